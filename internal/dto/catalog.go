package dto

import (
	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

func (r Category) ToDomain() domain.Category {
	return domain.Category{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		ImageRef:    r.Image,
	}
}

type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	URLImages   []string `json:"URLimages"`
	Category    Ref      `json:"category,omitempty"`
	Description string   `json:"description"`
	Materials   []string `json:"materials"`
	Price       float64  `json:"price"`
	Stock       *int     `json:"stock,omitempty"`
	Priority    bool     `json:"priority,omitempty"`
}

func (r Product) ToDomain() domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		ImageRefs:   r.URLImages,
		CategoryRef: string(r.Category),
		Description: r.Description,
		Materials:   r.Materials,
		Price:       decimal.NewFromFloat(r.Price),
		Stock:       stockToDomain(r.Stock),
		Priority:    r.Priority,
	}
}

type SearchResults struct {
	Results []Product `json:"results"`
}

type StockLevel struct {
	Quantity int `json:"quantity"`
}
