package models

import "time"

// OrderHistoryEntry adalah snapshot pesanan yang sudah dikonfirmasi.
// Append-only: tidak pernah diubah setelah dibuat.
type OrderHistoryEntry struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	CustomerName  string             `gorm:"type:varchar(255)" json:"customer_name"`
	TableNumber   int                `gorm:"not null;index" json:"table_number"`
	Date          string             `gorm:"type:varchar(20);not null" json:"date"`
	Time          string             `gorm:"type:varchar(20);not null" json:"time"`
	Total         float64            `gorm:"not null" json:"total"`
	InvoiceNumber string             `gorm:"type:varchar(32);not null;index" json:"invoice_number"`
	Lines         []OrderHistoryLine `gorm:"foreignKey:EntryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order"`
	CreatedAt     time.Time          `gorm:"not null" json:"created_at"`
}

type OrderHistoryLine struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	EntryID  uint    `gorm:"not null;index" json:"-"`
	Position int     `gorm:"not null" json:"-"`
	MenuID   int     `gorm:"not null" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
}

// NewHistoryLines copies order lines into snapshot rows, keeping their order.
func NewHistoryLines(order []OrderLine) []OrderHistoryLine {
	lines := make([]OrderHistoryLine, 0, len(order))
	for i, l := range order {
		lines = append(lines, OrderHistoryLine{
			Position: i,
			MenuID:   l.ID,
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}
	return lines
}

// OrderLines mengembalikan snapshot sebagai OrderLine biasa.
func (e OrderHistoryEntry) OrderLines() []OrderLine {
	out := make([]OrderLine, 0, len(e.Lines))
	for _, l := range e.Lines {
		out = append(out, OrderLine{ID: l.MenuID, Name: l.Name, Price: l.Price, Quantity: l.Quantity})
	}
	return out
}
