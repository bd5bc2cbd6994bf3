package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	shippingLowTierLimit  = decimal.NewFromInt(400)
	shippingHighTierLimit = decimal.NewFromInt(1000)

	shippingLow  = decimal.NewFromInt(39)
	shippingMid  = decimal.NewFromInt(59)
	shippingHigh = decimal.NewFromInt(109)

	taxRate = decimal.RequireFromString("0.20")
)

// CartSummary is a display estimate. The order endpoint computes the real totals.
type CartSummary struct {
	ItemsPrice    Money
	ShippingPrice Money
	TaxPrice      Money
	TotalPrice    Money
}

func Summarize(lines []CartLine, cur currency.Unit) CartSummary {
	items := decimal.Zero
	for _, l := range lines {
		items = items.Add(l.Subtotal())
	}
	items = round2(items)

	tax := round2(items.Mul(taxRate))
	shipping := ShippingFor(items)

	return CartSummary{
		ItemsPrice:    NewMoney(items, cur),
		ShippingPrice: NewMoney(shipping, cur),
		TaxPrice:      NewMoney(tax, cur),
		TotalPrice:    NewMoney(items.Add(shipping).Add(tax), cur),
	}
}

// ShippingFor returns the flat shipping fee for an items total:
// below 400, 400 to 1000 inclusive, above 1000.
func ShippingFor(itemsPrice decimal.Decimal) decimal.Decimal {
	switch {
	case itemsPrice.LessThan(shippingLowTierLimit):
		return shippingLow
	case itemsPrice.LessThanOrEqual(shippingHighTierLimit):
		return shippingMid
	default:
		return shippingHigh
	}
}
