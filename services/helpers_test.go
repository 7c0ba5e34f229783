package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-pos/database"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 11, 10, 14, 30, 5, 123000000, time.UTC)

// newTestDB membuka SQLite in-memory yang terpisah per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type recordedEvent struct {
	Event string
	Data  interface{}
}

type recorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recorder) Publish(event string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{event, data})
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Event)
	}
	return out
}

func newTestSession(t *testing.T, opts Options) (*Session, *HistoryStore, *recorder) {
	t.Helper()
	catalog, err := LoadCatalog("")
	require.NoError(t, err)

	store := NewHistoryStore(newTestDB(t))
	rec := &recorder{}
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return fixedNow }
	}
	if opts.Publisher == nil {
		opts.Publisher = rec
	}
	return NewSession(catalog, store, opts), store, rec
}
