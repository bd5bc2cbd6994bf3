package domain

import "github.com/shopspring/decimal"

type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	ImageRef    string
}

type Product struct {
	ID          string
	Name        string
	Slug        string
	ImageRefs   []string
	CategoryRef string
	Description string
	Materials   []string
	Price       decimal.Decimal
	Stock       Stock
	Priority    bool
}

// ToCartLine builds a line for quantity units of p. The first image, if any, becomes the line image.
func (p Product) ToCartLine(quantity int) CartLine {
	var image string
	if len(p.ImageRefs) > 0 {
		image = p.ImageRefs[0]
	}

	return CartLine{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		ImageRef:    image,
		UnitPrice:   p.Price,
		Quantity:    quantity,
		Stock:       p.Stock,
		CategoryRef: p.CategoryRef,
	}
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ProductQuery filters a product search. Zero-valued fields are not sent.
type ProductQuery struct {
	SearchText string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Categories []string
	InStock    *bool
	Materials  []string
	SortBy     string
	SortOrder  SortOrder
}

// ProductWithStock pairs a search result with its live stock level.
type ProductWithStock struct {
	Product Product
	Stock   int
}
