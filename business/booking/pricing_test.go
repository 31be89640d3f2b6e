package booking

import (
	"testing"

	"github.com/The-Batman-Code/laundry-service/domain"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuote(t *testing.T) {
	lines := []domain.ServiceLine{
		{LaundryTypeID: "regular", ItemID: "tshirt", ItemName: "T-Shirt", Quantity: 2, UnitPrice: 25},
		{LaundryTypeID: "bag", ItemID: "small_bag", ItemName: "Small Bag", Quantity: 1, UnitPrice: 150},
	}

	quote := ComputeQuote(lines)

	assert.Equal(t, 200.0, quote.Subtotal)
	assert.Equal(t, 16.0, quote.Tax)
	assert.Equal(t, 216.0, quote.Total)
	assert.Len(t, quote.Lines, 2)
}

func TestComputeQuoteSkipsZeroQuantity(t *testing.T) {
	lines := []domain.ServiceLine{
		{ItemID: "tshirt", Quantity: 0, UnitPrice: 25},
		{ItemID: "pants", Quantity: -3, UnitPrice: 30},
		{ItemID: "jacket", Quantity: 1, UnitPrice: 45},
	}

	quote := ComputeQuote(lines)

	assert.Len(t, quote.Lines, 1)
	assert.Equal(t, 45.0, quote.Subtotal)
}

func TestComputeQuoteEmpty(t *testing.T) {
	quote := ComputeQuote(nil)

	assert.Empty(t, quote.Lines)
	assert.Equal(t, 0.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Tax)
	assert.Equal(t, 0.0, quote.Total)
}

func TestComputeQuoteRounding(t *testing.T) {
	lines := []domain.ServiceLine{
		{ItemID: "towel", Quantity: 3, UnitPrice: 9.99},
	}

	quote := ComputeQuote(lines)

	assert.Equal(t, 29.97, quote.Subtotal)
	assert.Equal(t, 2.4, quote.Tax)
	assert.Equal(t, 32.37, quote.Total)
}
