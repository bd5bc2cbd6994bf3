package dto

import "github.com/nikolayk812/storefront-client/internal/domain"

type PaymentCard struct {
	ID              string `json:"_id,omitempty"`
	BankName        string `json:"bankName"`
	Number          string `json:"number"`
	FullName        string `json:"fullName"`
	MonthExpiration int    `json:"monthExpiration"`
	YearExpiration  int    `json:"yearExpiration"`
}

type UserProfile struct {
	ID           string        `json:"_id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	IsAdmin      bool          `json:"isAdmin"`
	PaymentCards []PaymentCard `json:"paymentCards"`
	Addresses    []Address     `json:"addresses"`
}

func UserProfileFromDomain(p domain.UserProfile) UserProfile {
	cards := make([]PaymentCard, 0, len(p.PaymentCards))
	for _, c := range p.PaymentCards {
		cards = append(cards, PaymentCard{
			ID:              c.ID,
			BankName:        c.BankName,
			Number:          c.Number,
			FullName:        c.HolderName,
			MonthExpiration: c.ExpirationMonth,
			YearExpiration:  c.ExpirationYear,
		})
	}

	return UserProfile{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		IsAdmin:      p.IsAdmin,
		PaymentCards: cards,
		Addresses:    AddressesFromDomain(p.Addresses),
	}
}

func (r UserProfile) ToDomain() domain.UserProfile {
	cards := make([]domain.PaymentCard, 0, len(r.PaymentCards))
	for _, c := range r.PaymentCards {
		cards = append(cards, domain.PaymentCard{
			ID:              c.ID,
			BankName:        c.BankName,
			Number:          c.Number,
			HolderName:      c.FullName,
			ExpirationMonth: c.MonthExpiration,
			ExpirationYear:  c.YearExpiration,
		})
	}

	return domain.UserProfile{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		IsAdmin:      r.IsAdmin,
		PaymentCards: cards,
		Addresses:    AddressesToDomain(r.Addresses),
	}
}
