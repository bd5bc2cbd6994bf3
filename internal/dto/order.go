package dto

import (
	"fmt"
	"time"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Order struct {
	ID              string     `json:"_id,omitempty"`
	User            Ref        `json:"user,omitempty"`
	OrderItems      []CartLine `json:"orderItems"`
	ShippingAddress Address    `json:"shippingAddress"`
	PaymentMethod   string     `json:"paymentMethod"`
	ItemsPrice      float64    `json:"itemsPrice"`
	ShippingPrice   float64    `json:"shippingPrice"`
	TaxPrice        float64    `json:"taxPrice"`
	TotalPrice      float64    `json:"totalPrice"`
	IsPaid          bool       `json:"isPaid"`
	IsDelivered     bool       `json:"isDelivered"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

func OrderRequestFromDomain(req domain.OrderRequest) (Order, error) {
	pm, err := EncodePaymentMethod(req.PaymentMethod)
	if err != nil {
		return Order{}, fmt.Errorf("EncodePaymentMethod: %w", err)
	}

	addr := AddressFromDomain(req.ShippingAddress)
	addr.User = Ref(req.UserID)

	return Order{
		User:            Ref(req.UserID),
		OrderItems:      CartLinesFromDomain(req.Lines),
		ShippingAddress: addr,
		PaymentMethod:   pm,
		ItemsPrice:      req.Summary.ItemsPrice.Amount.InexactFloat64(),
		ShippingPrice:   req.Summary.ShippingPrice.Amount.InexactFloat64(),
		TaxPrice:        req.Summary.TaxPrice.Amount.InexactFloat64(),
		TotalPrice:      req.Summary.TotalPrice.Amount.InexactFloat64(),
	}, nil
}

func (r Order) ToDomain(cur currency.Unit) (domain.Order, error) {
	lines, err := CartLinesToDomain(r.OrderItems)
	if err != nil {
		return domain.Order{}, fmt.Errorf("CartLinesToDomain: %w", err)
	}

	var createdAt time.Time
	if r.CreatedAt != nil {
		createdAt = *r.CreatedAt
	}

	money := func(f float64) domain.Money {
		return domain.NewMoney(decimal.NewFromFloat(f), cur)
	}

	return domain.Order{
		ID:              r.ID,
		UserID:          string(r.User),
		Lines:           lines,
		ShippingAddress: r.ShippingAddress.ToDomain(),
		PaymentMethod:   DecodePaymentMethod(r.PaymentMethod),
		Summary: domain.CartSummary{
			ItemsPrice:    money(r.ItemsPrice),
			ShippingPrice: money(r.ShippingPrice),
			TaxPrice:      money(r.TaxPrice),
			TotalPrice:    money(r.TotalPrice),
		},
		IsPaid:      r.IsPaid,
		IsDelivered: r.IsDelivered,
		CreatedAt:   createdAt,
	}, nil
}
