package domain

import "slices"

// AppState is the root client state. Only the store mutates it.
type AppState struct {
	Theme   Theme
	Cart    Cart
	Session *Session

	// SavedAddresses mirrors the user's addresses on the server.
	SavedAddresses []ShippingAddress
}

func DefaultAppState() AppState {
	return AppState{
		Theme:          ThemeLight,
		Cart:           EmptyCart(),
		SavedAddresses: []ShippingAddress{},
	}
}

func (s AppState) SignedIn() bool {
	return s.Session != nil
}

func (s AppState) Clone() AppState {
	s.Cart = s.Cart.Clone()
	s.Session = s.Session.Clone()
	s.SavedAddresses = slices.Clone(s.SavedAddresses)
	return s
}
