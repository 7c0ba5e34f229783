package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type SessionController struct {
	Session *services.Session
}

func NewSessionController(session *services.Session) *SessionController {
	return &SessionController{Session: session}
}

func (sc *SessionController) GetSession(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Session state", sc.Session.Snapshot())
}

// Navigate -> pindah layar
func (sc *SessionController) Navigate(c *gin.Context) {
	var body struct {
		View models.View `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	state, err := sc.Session.Navigate(body.View)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "View changed", state)
}

func (sc *SessionController) SelectCategory(c *gin.Context) {
	var body struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	state, err := sc.Session.SelectCategory(body.Category)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category selected", state)
}

// LockDetails -> tombol Confirm Details (locked=true) / Edit Details (locked=false)
func (sc *SessionController) LockDetails(c *gin.Context) {
	var body struct {
		Locked *bool `json:"locked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer details lock updated", sc.Session.LockCustomerDetails(*body.Locked))
}
