package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-pos/controllers"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
)

func setupMenuRouter(session *services.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	menuCtrl := controllers.NewMenuController(session.Catalog())
	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/categories", menuCtrl.GetCategories)
	return router
}

func TestGetMenu(t *testing.T) {
	router := setupMenuRouter(setupTestSession(t, false))

	w, resp := performRequest(t, router, http.MethodGet, "/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "List of menu items", resp.Message)

	var items []models.MenuItem
	decodeData(t, resp, &items)
	assert.Len(t, items, 6)
}

func TestGetMenuByCategory(t *testing.T) {
	router := setupMenuRouter(setupTestSession(t, false))

	w, resp := performRequest(t, router, http.MethodGet, "/menu?category=Breads", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.MenuItem
	decodeData(t, resp, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "Tandoori Roti", items[0].Name)
	assert.Equal(t, "Butter Naan", items[1].Name)

	w, resp = performRequest(t, router, http.MethodGet, "/menu?category=Desserts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, resp, &items)
	assert.Empty(t, items)

	w, resp = performRequest(t, router, http.MethodGet, "/menu?category=Soups", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Status)
}

func TestGetCategories(t *testing.T) {
	router := setupMenuRouter(setupTestSession(t, false))

	w, resp := performRequest(t, router, http.MethodGet, "/menu/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []string
	decodeData(t, resp, &categories)
	assert.Equal(t, []string{"Starter", "Main Course", "Breads", "Beverages", "Desserts"}, categories)
}
