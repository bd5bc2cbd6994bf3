package domain

import "time"

// OrderRequest is what the client submits. Prices are the display estimate;
// the server recomputes them.
type OrderRequest struct {
	UserID          string
	Lines           []CartLine
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
	Summary         CartSummary
}

type Order struct {
	ID              string
	UserID          string
	Lines           []CartLine
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
	Summary         CartSummary
	IsPaid          bool
	IsDelivered     bool
	CreatedAt       time.Time
}
