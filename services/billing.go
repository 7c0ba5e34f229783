package services

import (
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

// Tarif pajak: CGST dan SGST masing-masing 2.5%.
const (
	CGSTRate = 0.025
	SGSTRate = 0.025
)

// Bill is computed fresh from an order; nothing here is rounded.
type Bill struct {
	Subtotal float64
	CGST     float64
	SGST     float64
	Total    float64
}

func CalculateBill(order []models.OrderLine) Bill {
	var subtotal float64
	for _, line := range order {
		subtotal += line.Price * float64(line.Quantity)
	}
	cgst := subtotal * CGSTRate
	sgst := subtotal * SGSTRate
	return Bill{
		Subtotal: subtotal,
		CGST:     cgst,
		SGST:     sgst,
		Total:    subtotal + cgst + sgst,
	}
}

type BillDisplay struct {
	Subtotal string `json:"subtotal"`
	CGST     string `json:"cgst"`
	SGST     string `json:"sgst"`
	Total    string `json:"total"`
}

// BillView adalah bentuk tagihan untuk layar: dibulatkan 2 desimal.
type BillView struct {
	Subtotal float64     `json:"subtotal"`
	CGST     float64     `json:"cgst"`
	SGST     float64     `json:"sgst"`
	Total    float64     `json:"total"`
	Display  BillDisplay `json:"display"`
}

func (b Bill) View() BillView {
	return BillView{
		Subtotal: utils.Round2(b.Subtotal),
		CGST:     utils.Round2(b.CGST),
		SGST:     utils.Round2(b.SGST),
		Total:    utils.Round2(b.Total),
		Display: BillDisplay{
			Subtotal: utils.FormatRupee(b.Subtotal),
			CGST:     utils.FormatRupee(b.CGST),
			SGST:     utils.FormatRupee(b.SGST),
			Total:    utils.FormatRupee(b.Total),
		},
	}
}

// DetailSummary is the bill block shown for an archived order.
type DetailSummary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	Legacy   bool    `json:"legacy"`
}

// SummarizeHistoryEntry recomputes subtotal and tax from the snapshot lines and
// shows the stored tax-inclusive total as is. The two can disagree when the
// stored total was written by someone else (the demo seed, for one). With
// legacy set it instead treats the stored total as the subtotal and adds 5% on
// top, which overstates the bill.
func SummarizeHistoryEntry(entry models.OrderHistoryEntry, legacy bool) DetailSummary {
	if legacy {
		rate := CGSTRate + SGSTRate
		return DetailSummary{
			Subtotal: entry.Total,
			Tax:      utils.Round2(entry.Total * rate),
			Total:    utils.Round2(entry.Total * (1 + rate)),
			Legacy:   true,
		}
	}
	bill := CalculateBill(entry.OrderLines())
	return DetailSummary{
		Subtotal: utils.Round2(bill.Subtotal),
		Tax:      utils.Round2(bill.CGST + bill.SGST),
		Total:    utils.Round2(entry.Total),
	}
}
