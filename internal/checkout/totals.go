package checkout

import (
	"bakery-storefront/internal/model"

	"github.com/shopspring/decimal"
)

// TaxRate is the VAT applied to every sale.
var TaxRate = decimal.RequireFromString("0.19")

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives the displayed totals from the cart alone.
// An empty cart yields all-zero totals.
func ComputeTotals(items []model.CartItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
