package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type MenuController struct {
	Catalog *services.Catalog
}

func NewMenuController(catalog *services.Catalog) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GetMenu -> semua item, atau per kategori lewat ?category=
func (mc *MenuController) GetMenu(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		utils.RespondJSON(c, http.StatusOK, "List of menu items", mc.Catalog.Items())
		return
	}

	items, err := mc.Catalog.ByCategory(category)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu items in "+category, items)
}

func (mc *MenuController) GetCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All menu categories", mc.Catalog.Categories())
}
