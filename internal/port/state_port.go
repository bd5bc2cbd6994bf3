package port

import (
	"context"

	"github.com/nikolayk812/storefront-client/internal/domain"
)

type StateRepository interface {
	// Load always returns a usable state. The error reports fields that fell back to defaults.
	Load(ctx context.Context) (domain.AppState, error)

	SaveTheme(ctx context.Context, theme domain.Theme) error
	SaveSession(ctx context.Context, session domain.Session) error
	SaveCartLines(ctx context.Context, lines []domain.CartLine) error
	SaveShippingAddress(ctx context.Context, addr domain.ShippingAddress) error
	SavePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error
	SaveSavedAddresses(ctx context.Context, addrs []domain.ShippingAddress) error

	// PurgeSession removes the session, cart lines, shipping address and payment method keys.
	PurgeSession(ctx context.Context) error
}

type TokenSource interface {
	AuthToken(ctx context.Context) (string, bool)
}
