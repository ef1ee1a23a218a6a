package ports

import (
	"context"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
)

// ProductRepository persists catalog entries. FindAll returns products newest
// first. Writes that violate the unique slug index return
// domain.ErrSlugExists; lookups return domain.ErrProductNotFound when no
// product matches.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
