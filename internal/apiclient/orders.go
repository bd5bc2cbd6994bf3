package apiclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/nikolayk812/storefront-client/internal/dto"
)

func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	body, err := dto.OrderRequestFromDomain(req)
	if err != nil {
		return domain.Order{}, fmt.Errorf("dto.OrderRequestFromDomain: %w", err)
	}

	var record dto.Order
	if err := c.post(ctx, "CreateOrder", "/api/orders", body, &record); err != nil {
		return domain.Order{}, err
	}

	return c.orderToDomain("CreateOrder", record)
}

func (c *Client) Order(ctx context.Context, orderID string) (domain.Order, error) {
	var record dto.Order
	if err := c.get(ctx, "Order", "/api/orders/"+url.PathEscape(orderID), nil, &record); err != nil {
		return domain.Order{}, err
	}

	return c.orderToDomain("Order", record)
}

func (c *Client) orderToDomain(op string, record dto.Order) (domain.Order, error) {
	if record.ID == "" {
		return domain.Order{}, &RemoteAPIError{Op: op, StatusCode: 200, Message: "order response has no _id"}
	}

	order, err := record.ToDomain(c.currency)
	if err != nil {
		return domain.Order{}, &RemoteAPIError{Op: op, StatusCode: 200, Message: "malformed order", Err: err}
	}
	return order, nil
}
