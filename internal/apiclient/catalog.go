package apiclient

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/nikolayk812/storefront-client/internal/dto"
)

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var records []dto.Category
	if err := c.get(ctx, "Categories", "/api/categories", nil, &records); err != nil {
		return nil, err
	}

	result := make([]domain.Category, 0, len(records))
	for _, r := range records {
		result = append(result, r.ToDomain())
	}
	return result, nil
}

func (c *Client) CategoryBySlug(ctx context.Context, slug string) (domain.Category, error) {
	var record dto.Category
	if err := c.get(ctx, "CategoryBySlug", "/api/categories/slug/"+url.PathEscape(slug), nil, &record); err != nil {
		return domain.Category{}, err
	}
	return record.ToDomain(), nil
}

func (c *Client) SearchProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	var records dto.SearchResults
	if err := c.get(ctx, "SearchProducts", "/api/products/search", searchParams(q), &records); err != nil {
		return nil, err
	}

	result := make([]domain.Product, 0, len(records.Results))
	for _, r := range records.Results {
		result = append(result, r.ToDomain())
	}
	return result, nil
}

// searchParams sends only the filters that are set. List filters are comma-joined.
func searchParams(q domain.ProductQuery) url.Values {
	params := url.Values{}

	if q.SearchText != "" {
		params.Set("searchText", q.SearchText)
	}
	if q.MinPrice != nil {
		params.Set("minPrice", q.MinPrice.String())
	}
	if q.MaxPrice != nil {
		params.Set("maxPrice", q.MaxPrice.String())
	}
	if len(q.Categories) > 0 {
		params.Set("categories", strings.Join(q.Categories, ","))
	}
	if q.InStock != nil {
		params.Set("inStock", strconv.FormatBool(*q.InStock))
	}
	if len(q.Materials) > 0 {
		params.Set("materials", strings.Join(q.Materials, ","))
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		params.Set("sortOrder", string(q.SortOrder))
	}

	return params
}

func (c *Client) ProductStock(ctx context.Context, productID string) (int, error) {
	var record dto.StockLevel
	if err := c.get(ctx, "ProductStock", "/api/stocks/products/"+url.PathEscape(productID), nil, &record); err != nil {
		return 0, err
	}
	return record.Quantity, nil
}
