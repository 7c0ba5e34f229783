package services

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-pos/models"
)

const (
	invoicePrefix     = "INV"
	invoiceDigits     = 8
	historyDateLayout = "1/2/2006"
	historyTimeLayout = "03:04 PM"
)

// Options mengatur dependensi Session. Field kosong diisi default.
type Options struct {
	Clock           func() time.Time
	Publisher       Publisher
	Logger          *logrus.Logger
	LegacyDetailTax bool
}

// SessionState adalah posisi navigasi layar kasir saat ini.
type SessionState struct {
	View             models.View               `json:"view"`
	SelectedTable    int                       `json:"selected_table"`
	SelectedCategory string                    `json:"selected_category"`
	EditingLocked    bool                      `json:"editing_locked"`
	SelectedOrder    *models.OrderHistoryEntry `json:"selected_order,omitempty"`
}

// Session owns every table record, the order history and the view state of one
// POS device. All methods are safe for concurrent use; they are serialised so
// only one edit is in flight at a time.
type Session struct {
	mu sync.Mutex

	catalog   *Catalog
	history   *HistoryStore
	now       func() time.Time
	publisher Publisher
	log       *logrus.Logger
	legacyTax bool

	tables           map[int]models.TableRecord
	view             models.View
	selectedTable    int
	selectedCategory string
	editingLocked    bool
	selectedOrder    *models.OrderHistoryEntry
}

func NewSession(catalog *Catalog, history *HistoryStore, opts Options) *Session {
	s := &Session{
		catalog:          catalog,
		history:          history,
		now:              opts.Clock,
		publisher:        opts.Publisher,
		log:              opts.Logger,
		legacyTax:        opts.LegacyDetailTax,
		tables:           make(map[int]models.TableRecord),
		view:             models.ViewHome,
		selectedCategory: catalog.DefaultCategory(),
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.publisher == nil {
		s.publisher = nopPublisher{}
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	return s
}

func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// ---------------------------------------------------------------------------
// View state
// ---------------------------------------------------------------------------

func (s *Session) Snapshot() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() SessionState {
	state := SessionState{
		View:             s.view,
		SelectedTable:    s.selectedTable,
		SelectedCategory: s.selectedCategory,
		EditingLocked:    s.editingLocked,
	}
	if s.selectedOrder != nil {
		entry := *s.selectedOrder
		state.SelectedOrder = &entry
	}
	return state
}

func (s *Session) Navigate(view models.View) (SessionState, error) {
	if !view.Valid() {
		return s.Snapshot(), fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
	s.mu.Lock()
	s.view = view
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.publisher.Publish(EventSessionUpdate, state)
	return state, nil
}

// SelectTable membuka layar status untuk meja n.
func (s *Session) SelectTable(n int) (SessionState, error) {
	if !models.ValidTableNumber(n) {
		return s.Snapshot(), ErrTableOutOfRange
	}
	s.mu.Lock()
	s.selectedTable = n
	s.view = models.ViewStatus
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.publisher.Publish(EventSessionUpdate, state)
	return state, nil
}

func (s *Session) SelectCategory(name string) (SessionState, error) {
	if !s.catalog.HasCategory(name) {
		return s.Snapshot(), fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	s.mu.Lock()
	s.selectedCategory = name
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.publisher.Publish(EventSessionUpdate, state)
	return state, nil
}

// LockCustomerDetails toggles the "Confirm Details" lock. While locked, patches
// to customer name and phone are dropped.
func (s *Session) LockCustomerDetails(locked bool) SessionState {
	s.mu.Lock()
	s.editingLocked = locked
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.publisher.Publish(EventSessionUpdate, state)
	return state
}

// ---------------------------------------------------------------------------
// Table registry
// ---------------------------------------------------------------------------

// Tables returns occupancy for every table number, in order.
func (s *Session) Tables() []models.TableSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.TableSummary, 0, models.MaxTableNumber)
	for n := models.MinTableNumber; n <= models.MaxTableNumber; n++ {
		out = append(out, models.TableSummary{
			Number:     n,
			IsOccupied: s.tables[n].IsOccupied,
		})
	}
	return out
}

// GetTable never fails: an unknown or untouched table reads as the default record.
func (s *Session) GetTable(n int) models.TableRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tableLocked(n).Clone()
}

func (s *Session) tableLocked(n int) models.TableRecord {
	if rec, ok := s.tables[n]; ok {
		return rec
	}
	return models.DefaultTableRecord()
}

// UpdateTable merges patch into the table record. Unselected (0) or unknown
// table numbers are ignored.
func (s *Session) UpdateTable(n int, patch models.TablePatch) models.TableRecord {
	if !models.ValidTableNumber(n) {
		return models.DefaultTableRecord()
	}
	s.mu.Lock()
	if s.editingLocked {
		patch.CustomerName = nil
		patch.CustomerPhone = nil
	}
	rec := s.tableLocked(n)
	patch.Apply(&rec)
	s.tables[n] = rec
	out := rec.Clone()
	s.mu.Unlock()

	s.publishTable(EventTableUpdate, n, out)
	return out
}

// ResetTable forgets everything about table n and returns to the table grid.
func (s *Session) ResetTable(n int) {
	if !models.ValidTableNumber(n) {
		return
	}
	s.mu.Lock()
	delete(s.tables, n)
	s.view = models.ViewTables
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.log.WithField("table", n).Info("table reset")
	s.publishTable(EventTableReset, n, models.DefaultTableRecord())
	s.publisher.Publish(EventSessionUpdate, state)
}

// ---------------------------------------------------------------------------
// Order editor
// ---------------------------------------------------------------------------

// AddItem adds one of the menu item to the table's order, bumping the quantity
// if the item is already there. The price is copied now and never re-synced.
func (s *Session) AddItem(n, menuItemID int) (models.TableRecord, error) {
	item, ok := s.catalog.Item(menuItemID)
	if !ok {
		return models.TableRecord{}, ErrUnknownMenuItem
	}
	if !models.ValidTableNumber(n) {
		return models.DefaultTableRecord(), nil
	}

	s.mu.Lock()
	rec := s.tableLocked(n).Clone()
	if i := rec.FindLine(item.ID); i >= 0 {
		rec.Order[i].Quantity++
	} else {
		rec.Order = append(rec.Order, models.OrderLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
		})
	}
	s.tables[n] = rec
	out := rec.Clone()
	s.mu.Unlock()

	s.publishTable(EventTableUpdate, n, out)
	return out, nil
}

// SetQuantity sets the quantity of a line; zero removes it and negatives are
// rejected. Lines not in the order are left alone.
func (s *Session) SetQuantity(n, itemID, quantity int) (models.TableRecord, error) {
	if quantity < 0 {
		return s.GetTable(n), ErrInvalidQuantity
	}
	return s.changeLine(n, itemID, func(int) int { return quantity })
}

// Increment dan Decrement adalah tombol +/- di layar menu.
func (s *Session) Increment(n, itemID int) (models.TableRecord, error) {
	return s.changeLine(n, itemID, func(q int) int { return q + 1 })
}

func (s *Session) Decrement(n, itemID int) (models.TableRecord, error) {
	return s.changeLine(n, itemID, func(q int) int { return q - 1 })
}

// changeLine membaca dan menulis quantity satu line di bawah satu lock.
// Hasil 0 menghapus line.
func (s *Session) changeLine(n, itemID int, next func(current int) int) (models.TableRecord, error) {
	if !models.ValidTableNumber(n) {
		return models.DefaultTableRecord(), nil
	}

	s.mu.Lock()
	rec := s.tableLocked(n).Clone()
	i := rec.FindLine(itemID)
	if i < 0 {
		s.mu.Unlock()
		return rec, nil
	}

	q := next(rec.Order[i].Quantity)
	if q < 0 {
		s.mu.Unlock()
		return rec, ErrInvalidQuantity
	}
	if q == 0 {
		rec.Order = append(rec.Order[:i], rec.Order[i+1:]...)
	} else {
		rec.Order[i].Quantity = q
	}
	s.tables[n] = rec
	out := rec.Clone()
	s.mu.Unlock()

	s.publishTable(EventTableUpdate, n, out)
	return out, nil
}

// Bill computes the current bill for table n.
func (s *Session) Bill(n int) Bill {
	return CalculateBill(s.GetTable(n).Order)
}

// ---------------------------------------------------------------------------
// Order archiver
// ---------------------------------------------------------------------------

// ConfirmOrder archives the table's current order into history and marks the
// table occupied. The clock is read once so the table record and the history
// entry carry the same invoice number, date and time. The order itself stays
// on the table. Unselected or unknown tables return (nil, nil).
func (s *Session) ConfirmOrder(n int) (*models.OrderHistoryEntry, error) {
	if !models.ValidTableNumber(n) {
		return nil, nil
	}

	s.mu.Lock()
	rec := s.tableLocked(n).Clone()
	bill := CalculateBill(rec.Order)
	now := s.now()
	invoice := InvoiceNumber(now)
	orderTime := now.Format(historyTimeLayout)

	entry := &models.OrderHistoryEntry{
		CustomerName:  rec.CustomerName,
		TableNumber:   n,
		Date:          now.Format(historyDateLayout),
		Time:          orderTime,
		Total:         bill.Total,
		InvoiceNumber: invoice,
		Lines:         models.NewHistoryLines(rec.Order),
		CreatedAt:     now,
	}
	if err := s.history.Append(entry); err != nil {
		s.mu.Unlock()
		s.log.WithError(err).WithField("table", n).Error("confirm order failed")
		return nil, err
	}

	rec.OrderDate = &now
	rec.OrderTime = orderTime
	rec.InvoiceNumber = invoice
	rec.IsOccupied = true
	s.tables[n] = rec
	s.view = models.ViewStatus
	out := rec.Clone()
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"table":   n,
		"invoice": invoice,
		"history": entry.ID,
		"total":   bill.Total,
	}).Info("order confirmed")

	s.publisher.Publish(EventOrderConfirmed, entry)
	s.publishTable(EventTableUpdate, n, out)
	s.publisher.Publish(EventSessionUpdate, state)
	return entry, nil
}

// InvoiceNumber builds "INV" plus the last eight digits of the Unix-millisecond timestamp.
func InvoiceNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > invoiceDigits {
		ms = ms[len(ms)-invoiceDigits:]
	}
	return invoicePrefix + ms
}

// ---------------------------------------------------------------------------
// History
// ---------------------------------------------------------------------------

func (s *Session) History() ([]models.OrderHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.List()
}

// ViewDetails opens one archived order on the detail screen.
func (s *Session) ViewDetails(id uint) (models.OrderHistoryEntry, DetailSummary, error) {
	s.mu.Lock()
	entry, err := s.history.Get(id)
	if err != nil {
		s.mu.Unlock()
		return entry, DetailSummary{}, err
	}
	selected := entry
	s.selectedOrder = &selected
	s.view = models.ViewViewDetails
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.publisher.Publish(EventSessionUpdate, state)
	return entry, SummarizeHistoryEntry(entry, s.legacyTax), nil
}

// CloseDetails kembali ke daftar riwayat.
func (s *Session) CloseDetails() SessionState {
	s.mu.Lock()
	s.selectedOrder = nil
	s.view = models.ViewHistory
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.publisher.Publish(EventSessionUpdate, state)
	return state
}

func (s *Session) publishTable(event string, n int, rec models.TableRecord) {
	s.publisher.Publish(event, TableEvent{
		TableNumber: n,
		Table:       rec,
		Bill:        CalculateBill(rec.Order).View(),
	})
}
