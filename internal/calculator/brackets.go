package calculator

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// ComputeBracketTax applies progressive marginal rates to amount.
// Each bracket taxes only the slice of amount between the previous upper bound
// and its own; the total is rounded half-up to whole shekels once, at the end.
func ComputeBracketTax(amount float64, brackets []TaxBracket) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return floatBracketTax(amount, brackets)
	}

	total := decimal.Zero
	previousUpper := 0.0
	for _, b := range brackets {
		if amount <= previousUpper {
			break
		}
		taxable := math.Min(amount, b.UpperBound) - previousUpper
		if taxable > 0 {
			total = total.Add(decimal.NewFromFloat(taxable).Mul(decimal.NewFromFloat(b.Rate)))
		}
		previousUpper = b.UpperBound
	}

	rounded, _ := total.Add(half).Floor().Float64()
	return rounded
}

// floatBracketTax keeps the walk total for amounts decimal cannot represent
func floatBracketTax(amount float64, brackets []TaxBracket) float64 {
	total := 0.0
	previousUpper := 0.0
	for _, b := range brackets {
		if amount <= previousUpper {
			break
		}
		taxable := math.Min(amount, b.UpperBound) - previousUpper
		if taxable > 0 {
			total += taxable * b.Rate
		}
		previousUpper = b.UpperBound
	}
	return roundHalfUp(total)
}

// roundHalfUp rounds to the nearest whole unit, halves toward +∞
func roundHalfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		return f + 1
	}
	return f
}

// MarshalJSON writes the unbounded upper bound as null
func (b TaxBracket) MarshalJSON() ([]byte, error) {
	var upper *float64
	if !math.IsInf(b.UpperBound, 1) {
		upper = &b.UpperBound
	}
	return json.Marshal(struct {
		UpperBound *float64 `json:"upper_bound"`
		Rate       float64  `json:"rate"`
	}{upper, b.Rate})
}
