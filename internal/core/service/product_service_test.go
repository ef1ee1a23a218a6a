package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
	"github.com/apnakhakra/storefront-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	next     int
	findAlls int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	for _, existing := range r.products {
		if existing.Slug == p.Slug {
			return nil, domain.ErrSlugExists
		}
	}
	copy := *p
	r.next++
	copy.ID = fmt.Sprintf("prod_%d", r.next)
	r.products[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	r.findAlls++
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[p.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	copy := *p
	r.products[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) DeleteAll(_ context.Context) error {
	r.products = make(map[string]*domain.Product)
	return nil
}

// stubCatalogCache is an in-memory stand-in for the Redis catalog cache.
type stubCatalogCache struct {
	cached      []domain.Product
	invalidated int
}

func (c *stubCatalogCache) Get(_ context.Context) ([]domain.Product, error) {
	return c.cached, nil
}

func (c *stubCatalogCache) Set(_ context.Context, products []domain.Product) error {
	c.cached = products
	return nil
}

func (c *stubCatalogCache) Invalidate(_ context.Context) error {
	c.cached = nil
	c.invalidated++
	return nil
}

func newTestProductService(repo ports.ProductRepository, cache CatalogCache) *ProductService {
	return NewProductService(repo, cache, zerolog.Nop())
}

func TestProductService_Create(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestProductService(repo, &stubCatalogCache{})

	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:          "Masala Khakra",
		Slug:          "masala-khakra",
		ActualPrice:   200,
		MarginPrice:   99,
		StockQuantity: 50,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if product.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if product.Price != 299 {
		t.Errorf("price = %v, want actual+margin = 299", product.Price)
	}
	if product.Images == nil {
		t.Error("expected images to default to an empty slice")
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	svc := newTestProductService(newStubProductRepo(), &stubCatalogCache{})

	for _, in := range []ports.CreateProductInput{
		{Slug: "x"},
		{Name: "X"},
	} {
		_, err := svc.Create(context.Background(), in)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError for %+v, got %v", in, err)
		}
	}
}

func TestProductService_Create_DuplicateSlug(t *testing.T) {
	svc := newTestProductService(newStubProductRepo(), &stubCatalogCache{})

	in := ports.CreateProductInput{Name: "A", Slug: "same-slug", ActualPrice: 10}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	in.Name = "B"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestProductService_List_ServesFromCache(t *testing.T) {
	repo := newStubProductRepo()
	cache := &stubCatalogCache{}
	svc := newTestProductService(repo, cache)

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "A", Slug: "a"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// First list misses, fills the cache from the store.
	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("first List failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 product, got %d", len(first))
	}
	if repo.findAlls != 1 {
		t.Fatalf("expected a store read, got %d", repo.findAlls)
	}

	// Second list is a cache hit and never touches the store.
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("second List failed: %v", err)
	}
	if repo.findAlls != 1 {
		t.Fatalf("expected cache hit, store reads = %d", repo.findAlls)
	}
}

func TestProductService_Update_Partial(t *testing.T) {
	cache := &stubCatalogCache{}
	svc := newTestProductService(newStubProductRepo(), cache)

	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:        "A",
		Slug:        "a",
		ActualPrice: 100,
		MarginPrice: 20,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newMargin := 50.0
	updated, err := svc.Update(context.Background(), product.ID, ports.UpdateProductInput{
		Name:        "A+",
		MarginPrice: &newMargin,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "A+" {
		t.Errorf("name = %q, want A+", updated.Name)
	}
	if updated.Slug != "a" {
		t.Errorf("untouched slug changed to %q", updated.Slug)
	}
	if updated.Price != 150 {
		t.Errorf("price = %v, want recomputed 150", updated.Price)
	}
	if cache.invalidated == 0 {
		t.Error("expected the catalog cache to be invalidated on update")
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := newTestProductService(newStubProductRepo(), &stubCatalogCache{})

	_, err := svc.Update(context.Background(), "missing", ports.UpdateProductInput{Name: "X"})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo()
	cache := &stubCatalogCache{}
	svc := newTestProductService(repo, cache)

	product, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "A", Slug: "a"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), product.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), product.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
	if cache.invalidated == 0 {
		t.Error("expected the catalog cache to be invalidated on delete")
	}

	if err := svc.Delete(context.Background(), product.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for double delete, got %v", err)
	}
}
