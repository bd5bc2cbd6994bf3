package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// PlaceOrder submits the cart with its display summary. The returned order
// carries the server's totals. The cart lines are cleared only on success.
func (s *Cart) PlaceOrder(ctx context.Context) (_ domain.Order, err error) {
	ctx, span := s.tracer.Start(ctx, "PlaceOrder")
	defer func() { endSpan(span, err) }()

	snap := s.store.Snapshot()

	switch {
	case snap.Session == nil:
		return domain.Order{}, domain.ErrNotSignedIn
	case len(snap.Cart.Lines) == 0:
		return domain.Order{}, domain.ErrEmptyCart
	case snap.Cart.ShippingAddress.IsEmpty(), snap.Cart.PaymentMethod.IsZero():
		return domain.Order{}, domain.ErrCheckoutIncomplete
	}

	span.SetAttributes(
		attribute.String("app.user_id", snap.Session.UserID),
		attribute.Int("app.lines", len(snap.Cart.Lines)),
	)

	order, err := s.api.CreateOrder(ctx, domain.OrderRequest{
		UserID:          snap.Session.UserID,
		Lines:           snap.Cart.Lines,
		ShippingAddress: snap.Cart.ShippingAddress,
		PaymentMethod:   snap.Cart.PaymentMethod,
		Summary:         snap.Cart.Summary,
	})
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.store.ClearCart(); err != nil {
		return domain.Order{}, fmt.Errorf("store.ClearCart: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  snap.Session.UserID,
	}).Info("order placed")

	return order, nil
}
