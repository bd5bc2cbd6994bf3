package port

import (
	"context"

	"github.com/nikolayk812/storefront-client/internal/domain"
)

type CommerceAPI interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (domain.Category, error)
	SearchProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	ProductStock(ctx context.Context, productID string) (int, error)

	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	SignUp(ctx context.Context, name, email, password string) (domain.Session, error)
	User(ctx context.Context, userID string) (domain.UserProfile, error)
	UpdateUser(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error)

	CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error)
	Order(ctx context.Context, orderID string) (domain.Order, error)
}
