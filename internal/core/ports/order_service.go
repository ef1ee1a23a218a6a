package ports

import (
	"context"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
)

// CreateOrderInput carries a public order placement. All fields are
// mandatory and Items must be non-empty.
type CreateOrderInput struct {
	CustomerName string
	Email        string
	Phone        string
	Address      string
	Items        []domain.OrderItem
	Total        float64
}

// OrderService exposes public order placement and admin order management.
type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}
