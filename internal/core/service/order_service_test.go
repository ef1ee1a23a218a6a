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

type stubOrderRepo struct {
	orders map[string]*domain.Order
	next   int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	copy := *o
	r.next++
	copy.ID = fmt.Sprintf("order_%d", r.next)
	r.orders[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	clone := *o
	return &clone, nil
}

func validOrderInput() ports.CreateOrderInput {
	return ports.CreateOrderInput{
		CustomerName: "Alice",
		Email:        "alice@x.com",
		Phone:        "555-0100",
		Address:      "1 Main St",
		Items: []domain.OrderItem{
			{ProductID: "prod_1", Name: "Khakra", Quantity: 2, Price: 299},
		},
		Total: 598,
	}
}

func TestOrderService_Create(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zerolog.Nop())

	order, err := svc.Create(context.Background(), validOrderInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if order.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if order.Status != domain.OrderPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestOrderService_Create_Validation(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zerolog.Nop())

	mutations := []func(*ports.CreateOrderInput){
		func(in *ports.CreateOrderInput) { in.CustomerName = "" },
		func(in *ports.CreateOrderInput) { in.Email = "" },
		func(in *ports.CreateOrderInput) { in.Phone = "" },
		func(in *ports.CreateOrderInput) { in.Address = "" },
		func(in *ports.CreateOrderInput) { in.Total = 0 },
		func(in *ports.CreateOrderInput) { in.Items = nil },
	}
	for i, mutate := range mutations {
		in := validOrderInput()
		mutate(&in)
		_, err := svc.Create(context.Background(), in)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	order, err := svc.Create(context.Background(), validOrderInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), order.ID, "shipped")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != domain.OrderShipped {
		t.Errorf("status = %q, want shipped", updated.Status)
	}
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	order, err := svc.Create(context.Background(), validOrderInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Rejected before the store is touched.
	if _, err := svc.UpdateStatus(context.Background(), order.ID, "teleported"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	stored, _ := repo.FindByID(context.Background(), order.ID)
	if stored.Status != domain.OrderPending {
		t.Errorf("status mutated to %q despite invalid input", stored.Status)
	}
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), "missing", "shipped"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_Get_NotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
