package ports

import (
	"context"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
)

// OrderRepository persists customer orders. FindAll returns orders newest
// first; lookups return domain.ErrOrderNotFound when no order matches.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}
