package delivery

import (
	"math"

	"driver-earnings/internal/entities"
	"github.com/shopspring/decimal"
)

// До этой дистанции включительно доставка считается местной и оплачивается фиксированно.
const localDistanceMiles = 1.0

// QuoteEarning считает заработок за доставку: местная ставка для коротких
// доставок, иначе дистанция на ставку за милю. Округление до центов от нуля.
func QuoteEarning(rates entities.Rates, distanceMiles float64) (float64, error) {
	if !isValidDistance(distanceMiles) {
		return 0, ErrInvalidDistance
	}

	if distanceMiles <= localDistanceMiles {
		return rate(rates.Local).Round(2).InexactFloat64(), nil
	}

	earning := decimal.NewFromFloat(distanceMiles).Mul(rate(rates.Mileage))
	return earning.Round(2).InexactFloat64(), nil
}

// decimal.NewFromFloat паникует на NaN и бесконечностях.
func rate(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
