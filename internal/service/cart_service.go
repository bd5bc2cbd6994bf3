// Package service holds the checks the UI performs around store mutations:
// stock gating, sign-in through the API, order placement.
package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/nikolayk812/storefront-client/internal/port"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	tracerName      = "storefront-client/service"
	stockFetchLimit = 8
)

// StateStore is the part of the store the services drive.
type StateStore interface {
	Snapshot() domain.AppState
	AddOrUpdateCartLine(line domain.CartLine) error
	RemoveCartLine(id string) error
	ClearCart() error
	SignIn(session domain.Session) error
	SignOut() error
	SaveSavedAddresses(addrs []domain.ShippingAddress) error
}

type Cart struct {
	store  StateStore
	api    port.CommerceAPI
	tracer trace.Tracer
	log    logrus.FieldLogger
}

type Option func(*Cart)

// WithTracerProvider replaces the global OpenTelemetry provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Cart) {
		s.tracer = tp.Tracer(tracerName)
	}
}

func NewCart(store StateStore, api port.CommerceAPI, log logrus.FieldLogger, opts ...Option) (*Cart, error) {
	if store == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if api == nil {
		return nil, fmt.Errorf("api is nil")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	s := &Cart{
		store:  store,
		api:    api,
		tracer: otel.Tracer(tracerName),
		log:    log.WithField("component", "cart_service"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// AddProduct adds one more unit of p, checked against the live stock level.
func (s *Cart) AddProduct(ctx context.Context, p domain.Product) (_ domain.CartLine, err error) {
	ctx, span := s.tracer.Start(ctx, "AddProduct")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("app.product_id", p.ID))

	if p.ID == "" {
		return domain.CartLine{}, fmt.Errorf("%w: product ID is empty", domain.ErrInvalidArgument)
	}

	quantity := 1
	lines := s.store.Snapshot().Cart.Lines
	if i := domain.FindLine(lines, p.ID); i >= 0 {
		quantity = lines[i].Quantity + 1
	}
	span.SetAttributes(attribute.Int("app.quantity", quantity))

	available, err := s.api.ProductStock(ctx, p.ID)
	if err != nil {
		return domain.CartLine{}, err
	}

	if quantity > available {
		return domain.CartLine{}, fmt.Errorf("%w: product %s has %d, want %d", domain.ErrOutOfStock, p.ID, available, quantity)
	}

	line := p.ToCartLine(quantity)
	line.Stock = domain.KnownStock(available)

	if err := s.store.AddOrUpdateCartLine(line); err != nil {
		return domain.CartLine{}, fmt.Errorf("store.AddOrUpdateCartLine: %w", err)
	}

	return line, nil
}

// UpdateQuantity sets the quantity of an existing line, checked against the
// stock recorded on the line. Unknown stock is not checked.
func (s *Cart) UpdateQuantity(ctx context.Context, id string, quantity int) (err error) {
	_, span := s.tracer.Start(ctx, "UpdateQuantity")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(
		attribute.String("app.product_id", id),
		attribute.Int("app.quantity", quantity),
	)

	if quantity < 1 {
		return fmt.Errorf("%w: quantity %d", domain.ErrInvalidArgument, quantity)
	}

	lines := s.store.Snapshot().Cart.Lines
	i := domain.FindLine(lines, id)
	if i < 0 {
		return fmt.Errorf("%w: no cart line %s", domain.ErrInvalidArgument, id)
	}

	line := lines[i]
	if !line.Stock.Allows(quantity) {
		return fmt.Errorf("%w: product %s has %d, want %d", domain.ErrOutOfStock, id, line.Stock.Quantity, quantity)
	}

	line.Quantity = quantity
	if err := s.store.AddOrUpdateCartLine(line); err != nil {
		return fmt.Errorf("store.AddOrUpdateCartLine: %w", err)
	}

	return nil
}

func (s *Cart) RemoveItem(ctx context.Context, id string) (err error) {
	_, span := s.tracer.Start(ctx, "RemoveItem")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("app.product_id", id))

	if err := s.store.RemoveCartLine(id); err != nil {
		return fmt.Errorf("store.RemoveCartLine: %w", err)
	}
	return nil
}

// SearchWithStock runs a product search and then fetches the stock of every
// result concurrently. Any failed fetch fails the whole search.
func (s *Cart) SearchWithStock(ctx context.Context, q domain.ProductQuery) (_ []domain.ProductWithStock, err error) {
	ctx, span := s.tracer.Start(ctx, "SearchWithStock")
	defer func() { endSpan(span, err) }()

	products, err := s.api.SearchProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("app.results", len(products)))

	result := make([]domain.ProductWithStock, len(products))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(stockFetchLimit)

	for i, p := range products {
		g.Go(func() error {
			quantity, err := s.api.ProductStock(gctx, p.ID)
			if err != nil {
				return err
			}
			result[i] = domain.ProductWithStock{Product: p, Stock: quantity}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
