package dto

import (
	"fmt"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/shopspring/decimal"
)

type CartLine struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug,omitempty"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Stock    *int    `json:"stock,omitempty"`
	Category Ref     `json:"category,omitempty"`
}

func CartLineFromDomain(l domain.CartLine) CartLine {
	return CartLine{
		ID:       l.ID,
		Name:     l.Name,
		Slug:     l.Slug,
		Image:    l.ImageRef,
		Price:    l.UnitPrice.InexactFloat64(),
		Quantity: l.Quantity,
		Stock:    stockFromDomain(l.Stock),
		Category: Ref(l.CategoryRef),
	}
}

func CartLinesFromDomain(lines []domain.CartLine) []CartLine {
	result := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		result = append(result, CartLineFromDomain(l))
	}
	return result
}

func (r CartLine) ToDomain() (domain.CartLine, error) {
	if r.ID == "" {
		return domain.CartLine{}, fmt.Errorf("cart line _id is empty")
	}

	return domain.CartLine{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		ImageRef:    r.Image,
		UnitPrice:   decimal.NewFromFloat(r.Price),
		Quantity:    r.Quantity,
		Stock:       stockToDomain(r.Stock),
		CategoryRef: string(r.Category),
	}, nil
}

func CartLinesToDomain(records []CartLine) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0, len(records))

	for i, r := range records {
		line, err := r.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("line[%d]: %w", i, err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}

func stockFromDomain(s domain.Stock) *int {
	if !s.Known {
		return nil
	}
	q := s.Quantity
	return &q
}

func stockToDomain(q *int) domain.Stock {
	if q == nil {
		return domain.UnknownStock()
	}
	return domain.KnownStock(*q)
}
