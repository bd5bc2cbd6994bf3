package repository

// Persisted keys. Values are JSON except Theme and PaymentMethod.
const (
	KeySession         = "userInfo"
	KeyTheme           = "mode"
	KeyCartItems       = "cartItems"
	KeyShippingAddress = "shippingAddress"
	KeyPaymentMethod   = "paymentMethod"
	KeySavedAddresses  = "existingAddresses"
)

// SessionKeys are removed together on sign-out. Theme and the saved address mirror stay.
var SessionKeys = []string{
	KeySession,
	KeyCartItems,
	KeyShippingAddress,
	KeyPaymentMethod,
}
