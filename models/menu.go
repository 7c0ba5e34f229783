package models

// MenuItem satu baris di katalog menu. Harga dalam rupee.
type MenuItem struct {
	ID       int     `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Price    float64 `yaml:"price" json:"price"`
	Category string  `yaml:"category" json:"category"`
}
