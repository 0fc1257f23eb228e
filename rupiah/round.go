// Rounding amounts to clean magnitude multiples.
package rupiah

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundTo rounds amount to the nearest multiple of unit, half away from
// zero: RoundTo(1500, Ribu) = 2000, RoundTo(-1500, Ribu) = -2000.
// Intended granularities are Ribu, RatusRibu, and Juta, but any defined
// unit works. NaN and infinite amounts are returned unchanged.
func RoundTo(amount float64, unit Unit) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || unit.Value() == 0 {
		return amount
	}
	step := decimal.NewFromFloat(unit.Value())
	rounded := decimal.NewFromFloat(amount).Div(step).Round(0).Mul(step)
	f, _ := rounded.Float64()
	return f
}
