package services

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-pos/models"
	"gorm.io/gorm"
)

// HistoryStore menyimpan log pesanan yang sudah dikonfirmasi.
// ID dibuat oleh database (integer primary key), jadi selalu naik.
type HistoryStore struct {
	DB *gorm.DB
}

func NewHistoryStore(db *gorm.DB) *HistoryStore {
	return &HistoryStore{DB: db}
}

// Append inserts the entry and its lines in one transaction and fills entry.ID.
func (hs *HistoryStore) Append(entry *models.OrderHistoryEntry) error {
	if err := hs.DB.Create(entry).Error; err != nil {
		return fmt.Errorf("append order history: %w", err)
	}
	return nil
}

// List returns every entry, newest first.
func (hs *HistoryStore) List() ([]models.OrderHistoryEntry, error) {
	var entries []models.OrderHistoryEntry
	if err := hs.DB.Preload("Lines", orderedLines).Order("id DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list order history: %w", err)
	}
	return entries, nil
}

func (hs *HistoryStore) Get(id uint) (models.OrderHistoryEntry, error) {
	var entry models.OrderHistoryEntry
	err := hs.DB.Preload("Lines", orderedLines).First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entry, ErrOrderNotFound
	}
	if err != nil {
		return entry, fmt.Errorf("get order history %d: %w", id, err)
	}
	return entry, nil
}

func (hs *HistoryStore) Count() (int64, error) {
	var n int64
	if err := hs.DB.Model(&models.OrderHistoryEntry{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func orderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
