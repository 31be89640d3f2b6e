package booking

import (
	"math"

	"github.com/The-Batman-Code/laundry-service/domain"
)

// TaxRate applied on every booking subtotal.
const TaxRate = 0.08

// Quote is the priced view of a set of service lines.
type Quote struct {
	Lines    []domain.ServiceLine `json:"lines"`
	Subtotal float64              `json:"subtotal"`
	Tax      float64              `json:"tax"`
	Total    float64              `json:"total"`
}

// ComputeQuote prices the given lines: subtotal is the plain sum of
// quantity times unit price, tax is 8% of that, total is subtotal plus tax.
// Zero-quantity lines are skipped.
func ComputeQuote(lines []domain.ServiceLine) Quote {
	quote := Quote{}

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		quote.Lines = append(quote.Lines, line)
		quote.Subtotal += line.LineTotal()
	}

	quote.Subtotal = round2(quote.Subtotal)
	quote.Tax = round2(quote.Subtotal * TaxRate)
	quote.Total = round2(quote.Subtotal * (1 + TaxRate))

	return quote
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
