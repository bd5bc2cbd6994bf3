package dto

import "github.com/nikolayk812/storefront-client/internal/domain"

// Address encodes the empty address as {}.
type Address struct {
	ID          string `json:"_id,omitempty"`
	User        Ref    `json:"user,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Street      string `json:"street,omitempty"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Country     string `json:"country,omitempty"`
}

func AddressFromDomain(a domain.ShippingAddress) Address {
	return Address{
		ID:          a.ID,
		User:        Ref(a.UserID),
		FullName:    a.FullName,
		PhoneNumber: a.PhoneNumber,
		Street:      a.Street,
		Street2:     a.Street2,
		City:        a.City,
		PostalCode:  a.PostalCode,
		Country:     a.Country,
	}
}

func (r Address) ToDomain() domain.ShippingAddress {
	return domain.ShippingAddress{
		ID:          r.ID,
		UserID:      string(r.User),
		FullName:    r.FullName,
		PhoneNumber: r.PhoneNumber,
		Street:      r.Street,
		Street2:     r.Street2,
		City:        r.City,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
	}
}

func AddressesFromDomain(addrs []domain.ShippingAddress) []Address {
	result := make([]Address, 0, len(addrs))
	for _, a := range addrs {
		result = append(result, AddressFromDomain(a))
	}
	return result
}

func AddressesToDomain(records []Address) []domain.ShippingAddress {
	result := make([]domain.ShippingAddress, 0, len(records))
	for _, r := range records {
		result = append(result, r.ToDomain())
	}
	return result
}
