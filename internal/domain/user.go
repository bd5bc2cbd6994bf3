package domain

import "strings"

type PaymentCard struct {
	ID              string
	BankName        string
	Number          string
	HolderName      string
	ExpirationMonth int
	ExpirationYear  int
}

func (c PaymentCard) Snapshot() CardSnapshot {
	return CardSnapshot{
		ID:              c.ID,
		BankName:        c.BankName,
		MaskedNumber:    maskCardNumber(c.Number),
		HolderName:      c.HolderName,
		ExpirationMonth: c.ExpirationMonth,
		ExpirationYear:  c.ExpirationYear,
	}
}

// maskCardNumber keeps only the last four digits of number.
func maskCardNumber(number string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	switch {
	case d == "":
		return ""
	case len(d) <= 4:
		return "**** " + d
	default:
		return "**** " + d[len(d)-4:]
	}
}

type UserProfile struct {
	ID           string
	Name         string
	Email        string
	IsAdmin      bool
	PaymentCards []PaymentCard
	Addresses    []ShippingAddress
}
