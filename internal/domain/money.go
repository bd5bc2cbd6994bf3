package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, cur currency.Unit) Money {
	return Money{Amount: amount, Currency: cur}
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

// round2 rounds half away from zero to two decimal places, which is
// round-half-up for the non-negative amounts a cart produces.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
