package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-pos/middlewares"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type TableController struct {
	Session *services.Session
}

func NewTableController(session *services.Session) *TableController {
	return &TableController{Session: session}
}

// TableDetail adalah record meja beserta tagihannya.
type TableDetail struct {
	Number int                `json:"number"`
	Table  models.TableRecord `json:"table"`
	Bill   services.BillView  `json:"bill"`
}

func newTableDetail(n int, rec models.TableRecord) TableDetail {
	return TableDetail{
		Number: n,
		Table:  rec,
		Bill:   services.CalculateBill(rec.Order).View(),
	}
}

// GetAllTables -> grid 15 meja beserta status occupied/vacant
func (tc *TableController) GetAllTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of tables", tc.Session.Tables())
}

// GetTable -> detail satu meja; meja yang belum disentuh tampil kosong
func (tc *TableController) GetTable(c *gin.Context) {
	n, ok := tableNumberParam(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", newTableDetail(n, tc.Session.GetTable(n)))
}

// SelectTable -> pilih meja dan buka layar status
func (tc *TableController) SelectTable(c *gin.Context) {
	n, ok := tableNumberParam(c)
	if !ok {
		return
	}
	state, err := tc.Session.SelectTable(n)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table selected", state)
}

// UpdateTable -> ubah data customer dan status meja (partial)
func (tc *TableController) UpdateTable(c *gin.Context) {
	n, ok := tableNumberParam(c)
	if !ok {
		return
	}

	var patch models.TablePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	rec := tc.Session.UpdateTable(n, patch)
	utils.RespondJSON(c, http.StatusOK, "Table updated", newTableDetail(n, rec))
}

// ResetTable -> hapus semua data meja
func (tc *TableController) ResetTable(c *gin.Context) {
	n, ok := tableNumberParam(c)
	if !ok {
		return
	}
	tc.Session.ResetTable(n)
	utils.RespondJSON(c, http.StatusOK, "Table reset", newTableDetail(n, tc.Session.GetTable(n)))
}

// AddItem -> tambah satu item menu ke pesanan meja
func (tc *TableController) AddItem(c *gin.Context) {
	n, ok := tableNumberParam(c)
	if !ok {
		return
	}

	var body struct {
		MenuID int `json:"menu_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	rec, err := tc.Session.AddItem(n, body.MenuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added", newTableDetail(n, rec))
}

// UpdateItemQuantity -> set jumlah; 0 menghapus baris
func (tc *TableController) UpdateItemQuantity(c *gin.Context) {
	n, ok := tableNumberParam(c)
	if !ok {
		return
	}
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	rec, err := tc.Session.SetQuantity(n, itemID, *body.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", newTableDetail(n, rec))
}

// IncrementItem -> tombol + di layar menu
func (tc *TableController) IncrementItem(c *gin.Context) {
	tc.stepItem(c, tc.Session.Increment)
}

// DecrementItem -> tombol -; dari 1 menghapus baris
func (tc *TableController) DecrementItem(c *gin.Context) {
	tc.stepItem(c, tc.Session.Decrement)
}

func (tc *TableController) stepItem(c *gin.Context, step func(n, itemID int) (models.TableRecord, error)) {
	n, ok := tableNumberParam(c)
	if !ok {
		return
	}
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	rec, err := step(n, itemID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", newTableDetail(n, rec))
}

// GetBill -> subtotal, CGST, SGST, total
func (tc *TableController) GetBill(c *gin.Context) {
	n, ok := tableNumberParam(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table bill", tc.Session.Bill(n).View())
}

// ConfirmOrder -> arsipkan pesanan ke riwayat
func (tc *TableController) ConfirmOrder(c *gin.Context) {
	n, ok := tableNumberParam(c)
	if !ok {
		return
	}

	entry, err := tc.Session.ConfirmOrder(n)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"table":    n,
		"invoice":  entry.InvoiceNumber,
		"operator": c.GetString(middlewares.ContextOperator),
	}).Info("Order confirmed")
	utils.RespondJSON(c, http.StatusCreated, "Order confirmed", gin.H{
		"history": entry,
		"table":   newTableDetail(n, tc.Session.GetTable(n)),
	})
}
