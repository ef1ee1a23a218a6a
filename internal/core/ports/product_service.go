package ports

import (
	"context"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
)

// CreateProductInput carries a new catalog entry. Price is derived from
// ActualPrice + MarginPrice, never supplied by the client.
type CreateProductInput struct {
	Name          string
	Slug          string
	Description   string
	ActualPrice   float64
	MarginPrice   float64
	StockQuantity int
	Images        []string
}

// UpdateProductInput is a partial update. Name and Slug apply when non-empty;
// pointer fields apply whenever present.
type UpdateProductInput struct {
	Name          string
	Slug          string
	Description   *string
	ActualPrice   *float64
	MarginPrice   *float64
	StockQuantity *int
	Images        []string
}

// ProductService exposes catalog browsing (public) and management (admin).
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
