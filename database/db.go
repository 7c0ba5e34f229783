package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-pos/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open membuka database riwayat pesanan. DSN bawaan adalah SQLite in-memory,
// jadi isinya hilang saat proses berhenti.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Satu koneksi saja: database in-memory hilang kalau semua koneksi ditutup,
	// dan shared cache mengunci tabel antar koneksi.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.OrderHistoryEntry{}, &models.OrderHistoryLine{}); err != nil {
		return fmt.Errorf("migrate history: %w", err)
	}
	return nil
}
