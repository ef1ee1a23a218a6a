package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/apnakhakra/storefront-api/internal/api/metrics"
	"github.com/apnakhakra/storefront-api/internal/core/domain"
	"github.com/apnakhakra/storefront-api/internal/core/ports"
)

// CatalogCache abstracts the read cache for the product list (Redis).
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, error)
	Set(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

// ProductService implements catalog browsing and admin management. The full
// product list is served through a short-lived read cache; any write
// invalidates it.
type ProductService struct {
	repo  ports.ProductRepository
	cache CatalogCache
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache CatalogCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if cached, err := s.cache.Get(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
	} else if cached != nil {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, products); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache write failed")
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if in.Name == "" || in.Slug == "" {
		return nil, domain.NewValidationError("Name and slug are required")
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	product, err := s.repo.Create(ctx, &domain.Product{
		Name:          in.Name,
		Slug:          in.Slug,
		Description:   in.Description,
		Price:         in.ActualPrice + in.MarginPrice,
		ActualPrice:   in.ActualPrice,
		MarginPrice:   in.MarginPrice,
		StockQuantity: in.StockQuantity,
		Images:        images,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.invalidateCache(ctx)
	s.log.Info().Str("slug", product.Slug).Msg("product created")
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Slug != "" {
		product.Slug = in.Slug
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.ActualPrice != nil {
		product.ActualPrice = *in.ActualPrice
	}
	if in.MarginPrice != nil {
		product.MarginPrice = *in.MarginPrice
	}
	if in.StockQuantity != nil {
		product.StockQuantity = *in.StockQuantity
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	product.Price = product.ActualPrice + product.MarginPrice

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
