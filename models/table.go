package models

import "time"

// Nomor meja yang tersedia di lantai restoran.
const (
	MinTableNumber = 1
	MaxTableNumber = 15
)

// ValidTableNumber false juga untuk 0, yang berarti belum ada meja dipilih.
func ValidTableNumber(n int) bool {
	return n >= MinTableNumber && n <= MaxTableNumber
}

// OrderLine adalah satu item menu di pesanan meja yang belum dikonfirmasi.
// Price disalin saat item ditambahkan dan tidak mengikuti perubahan katalog.
type OrderLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// TableRecord menyimpan sesi satu meja.
type TableRecord struct {
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	IsOccupied    bool        `json:"is_occupied"`
	IsPrepared    bool        `json:"is_prepared"`
	IsPaid        bool        `json:"is_paid"`
	Order         []OrderLine `json:"order"`
	OrderDate     *time.Time  `json:"order_date,omitempty"`
	OrderTime     string      `json:"order_time,omitempty"`
	InvoiceNumber string      `json:"invoice_number,omitempty"`
}

// DefaultTableRecord is what an untouched table looks like: vacant, empty order.
func DefaultTableRecord() TableRecord {
	return TableRecord{Order: []OrderLine{}}
}

// Clone returns a copy that shares no slices or pointers with r.
func (r TableRecord) Clone() TableRecord {
	out := r
	out.Order = make([]OrderLine, len(r.Order))
	copy(out.Order, r.Order)
	if r.OrderDate != nil {
		d := *r.OrderDate
		out.OrderDate = &d
	}
	return out
}

// FindLine mengembalikan index line dengan id tersebut, atau -1.
func (r TableRecord) FindLine(itemID int) int {
	for i, line := range r.Order {
		if line.ID == itemID {
			return i
		}
	}
	return -1
}

// TablePatch berisi field yang ingin diubah; nil berarti tidak diubah.
type TablePatch struct {
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	IsOccupied    *bool   `json:"is_occupied"`
	IsPrepared    *bool   `json:"is_prepared"`
	IsPaid        *bool   `json:"is_paid"`
}

// Apply merges non-nil fields of p into r.
func (p TablePatch) Apply(r *TableRecord) {
	if p.CustomerName != nil {
		r.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		r.CustomerPhone = *p.CustomerPhone
	}
	if p.IsOccupied != nil {
		r.IsOccupied = *p.IsOccupied
	}
	if p.IsPrepared != nil {
		r.IsPrepared = *p.IsPrepared
	}
	if p.IsPaid != nil {
		r.IsPaid = *p.IsPaid
	}
}

// TableSummary dipakai untuk grid meja (Occupied / Vacant).
type TableSummary struct {
	Number     int  `json:"number"`
	IsOccupied bool `json:"is_occupied"`
}
