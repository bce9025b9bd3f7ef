package money

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Round округляет сумму до двух знаков (до центов)
func Round(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatEuro форматирует сумму в строку вида "€1,234.56"
func FormatEuro(amount float64) string {
	return "€" + humanize.FormatFloat("#,###.##", amount)
}
