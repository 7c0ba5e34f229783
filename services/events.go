package services

import "github.com/yeremiapane/restaurant-pos/models"

// Event yang dikirim ke layar lewat hub.
const (
	EventTableUpdate    = "table_update"
	EventTableReset     = "table_reset"
	EventOrderConfirmed = "order_confirmed"
	EventSessionUpdate  = "session_update"
)

// Publisher menerima event setelah state sesi berubah.
type Publisher interface {
	Publish(event string, data interface{})
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, interface{}) {}

// TableEvent is the payload of table_update and table_reset.
type TableEvent struct {
	TableNumber int                `json:"table_number"`
	Table       models.TableRecord `json:"table"`
	Bill        BillView           `json:"bill"`
}
