package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
)

const (
	catalogKey        = "catalog:products"
	defaultCatalogTTL = time.Minute
)

// CatalogCache caches the full product list as a single JSON value. Writes
// to the catalog invalidate it; entries also age out after the TTL so a
// missed invalidation heals itself.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
// A non-positive ttl falls back to one minute.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get returns the cached product list, or (nil, nil) on a cache miss.
func (c *CatalogCache) Get(ctx context.Context) ([]domain.Product, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("catalog cache decode: %w", err)
	}
	return products, nil
}

// Set stores the product list, expiring after the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, catalogKey, raw, c.ttl).Err()
}

// Invalidate drops the cached list.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
