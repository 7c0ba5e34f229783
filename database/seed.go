package database

import (
	"time"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
	"gorm.io/gorm"
)

// demoHistory adalah dua pesanan contoh yang tampil di layar riwayat saat demo.
func demoHistory() []models.OrderHistoryEntry {
	return []models.OrderHistoryEntry{
		{
			ID:            12,
			CustomerName:  "Raj Singh",
			TableNumber:   3,
			Date:          "11/10/24",
			Time:          "2:30 pm",
			Total:         760,
			InvoiceNumber: "INV20241110001",
			Lines: models.NewHistoryLines([]models.OrderLine{
				{ID: 1, Name: "Tandoori Chicken", Price: 295, Quantity: 2},
				{ID: 2, Name: "Butter Naan", Price: 40, Quantity: 3},
				{ID: 3, Name: "Cold Coffee", Price: 150, Quantity: 1},
			}),
			CreatedAt: time.Date(2024, 11, 10, 14, 30, 0, 0, time.Local),
		},
		{
			ID:            13,
			CustomerName:  "Sher Khan",
			TableNumber:   1,
			Date:          "11/10/24",
			Time:          "1:23 pm",
			Total:         160,
			InvoiceNumber: "INV20241110002",
			Lines: models.NewHistoryLines([]models.OrderLine{
				{ID: 4, Name: "Tandoori Roti", Price: 30, Quantity: 2},
				{ID: 6, Name: "Cold Coffee", Price: 150, Quantity: 1},
			}),
			CreatedAt: time.Date(2024, 11, 10, 13, 23, 0, 0, time.Local),
		},
	}
}

// SeedHistory hanya mengisi kalau tabel riwayat masih kosong.
func SeedHistory(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.OrderHistoryEntry{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	entries := demoHistory()
	if err := db.Create(&entries).Error; err != nil {
		return err
	}
	if utils.InfoLogger != nil {
		utils.InfoLogger.Printf("Seeded %d demo history entries", len(entries))
	}
	return nil
}
