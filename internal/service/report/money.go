package report

import (
	"math"

	"github.com/shopspring/decimal"
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// money переводит float в decimal. NaN и бесконечности считаются нулём,
// decimal.NewFromFloat на них паникует.
func money(v float64) decimal.Decimal {
	if !isFinite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func nonNegative(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}
