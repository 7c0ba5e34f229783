package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RupeeSymbol dipakai di semua tampilan tagihan.
const RupeeSymbol = "₹"

var currencyPrinter = message.NewPrinter(language.English)

// FormatRupee memformat nominal ke 2 desimal dengan pemisah ribuan.
// Example: 1234.5 -> "₹1,234.50"
func FormatRupee(amount float64) string {
	return currencyPrinter.Sprintf("%s%.2f", RupeeSymbol, amount)
}

// Round2 membulatkan ke 2 desimal. Hanya untuk tampilan, jangan dipakai
// saat akumulasi.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
