package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Cart struct {
	Lines           []CartLine
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod

	// Summary is derived from Lines when a snapshot is taken. It is never persisted.
	Summary CartSummary
}

// CartLine is one purchasable product in the cart. ID is unique within a cart.
type CartLine struct {
	ID          string
	Name        string
	Slug        string
	ImageRef    string
	UnitPrice   decimal.Decimal
	Quantity    int
	Stock       Stock
	CategoryRef string
}

// Stock is the advisory stock level known when the line was built.
// The zero value means unknown, which is not the same as zero units.
type Stock struct {
	Quantity int
	Known    bool
}

func KnownStock(quantity int) Stock {
	return Stock{Quantity: quantity, Known: true}
}

func UnknownStock() Stock {
	return Stock{}
}

// Allows reports whether quantity fits the known stock. Unknown stock allows anything.
func (s Stock) Allows(quantity int) bool {
	return !s.Known || quantity <= s.Quantity
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// FindLine returns the index of the line with the given id, or -1.
func FindLine(lines []CartLine, id string) int {
	return slices.IndexFunc(lines, func(l CartLine) bool {
		return l.ID == id
	})
}

// ShippingAddress with every field empty means no address was chosen yet.
type ShippingAddress struct {
	ID          string
	UserID      string
	FullName    string
	PhoneNumber string
	Street      string
	Street2     string
	City        string
	PostalCode  string
	Country     string
}

func (a ShippingAddress) IsEmpty() bool {
	return a == ShippingAddress{}
}

func (c Cart) Clone() Cart {
	c.Lines = slices.Clone(c.Lines)
	return c
}

func EmptyCart() Cart {
	return Cart{Lines: []CartLine{}}
}
