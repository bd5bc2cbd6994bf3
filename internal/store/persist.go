package store

import (
	"context"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/nikolayk812/storefront-client/internal/port"
)

// dirtyKeys is the set of persisted keys whose in-memory value has not been written yet.
type dirtyKeys uint8

const (
	dirtyPurge dirtyKeys = 1 << iota
	dirtyTheme
	dirtySession
	dirtyLines
	dirtyAddress
	dirtyPayment
	dirtySavedAddresses
)

// sessionKeys are covered by a purge.
const sessionKeys = dirtySession | dirtyLines | dirtyAddress | dirtyPayment

type keyWrite struct {
	key   dirtyKeys
	op    string
	write func(ctx context.Context, repo port.StateRepository, st domain.AppState) error
}

// writeOrder runs a purge before any write, so keys set after a sign-out survive it.
var writeOrder = []keyWrite{
	{
		key: dirtyPurge,
		op:  "PurgeSession",
		write: func(ctx context.Context, repo port.StateRepository, _ domain.AppState) error {
			return repo.PurgeSession(ctx)
		},
	},
	{
		key: dirtyTheme,
		op:  "SaveTheme",
		write: func(ctx context.Context, repo port.StateRepository, st domain.AppState) error {
			return repo.SaveTheme(ctx, st.Theme)
		},
	},
	{
		key: dirtySession,
		op:  "SaveSession",
		write: func(ctx context.Context, repo port.StateRepository, st domain.AppState) error {
			if st.Session == nil {
				return nil
			}
			return repo.SaveSession(ctx, *st.Session)
		},
	},
	{
		key: dirtyLines,
		op:  "SaveCartLines",
		write: func(ctx context.Context, repo port.StateRepository, st domain.AppState) error {
			return repo.SaveCartLines(ctx, st.Cart.Lines)
		},
	},
	{
		key: dirtyAddress,
		op:  "SaveShippingAddress",
		write: func(ctx context.Context, repo port.StateRepository, st domain.AppState) error {
			return repo.SaveShippingAddress(ctx, st.Cart.ShippingAddress)
		},
	},
	{
		key: dirtyPayment,
		op:  "SavePaymentMethod",
		write: func(ctx context.Context, repo port.StateRepository, st domain.AppState) error {
			return repo.SavePaymentMethod(ctx, st.Cart.PaymentMethod)
		},
	},
	{
		key: dirtySavedAddresses,
		op:  "SaveSavedAddresses",
		write: func(ctx context.Context, repo port.StateRepository, st domain.AppState) error {
			return repo.SaveSavedAddresses(ctx, st.SavedAddresses)
		},
	},
}
