package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type HistoryController struct {
	Session *services.Session
}

func NewHistoryController(session *services.Session) *HistoryController {
	return &HistoryController{Session: session}
}

// GetHistory -> riwayat pesanan, terbaru di atas
func (hc *HistoryController) GetHistory(c *gin.Context) {
	entries, err := hc.Session.History()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order history", entries)
}

// GetHistoryDetail -> buka detail satu pesanan
func (hc *HistoryController) GetHistoryDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, summary, err := hc.Session.ViewDetails(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", struct {
		Entry   models.OrderHistoryEntry `json:"entry"`
		Summary services.DetailSummary   `json:"summary"`
	}{entry, summary})
}

// CloseDetails -> kembali ke daftar riwayat
func (hc *HistoryController) CloseDetails(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Details closed", hc.Session.CloseDetails())
}
