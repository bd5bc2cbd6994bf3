package domain

import "errors"

var (
	ErrNotReady        = errors.New("store is not ready")
	ErrInvalidArgument = errors.New("invalid argument")

	ErrOutOfStock         = errors.New("quantity exceeds available stock")
	ErrNotSignedIn        = errors.New("not signed in")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutIncomplete = errors.New("shipping address or payment method missing")
)
