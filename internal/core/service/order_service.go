package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/apnakhakra/storefront-api/internal/api/metrics"
	"github.com/apnakhakra/storefront-api/internal/core/domain"
	"github.com/apnakhakra/storefront-api/internal/core/ports"
)

// OrderService implements public order placement and admin order management.
type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

// Create places a new order. All fields are mandatory; new orders always
// start as pending.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if in.CustomerName == "" || in.Email == "" || in.Phone == "" || in.Address == "" || in.Total == 0 {
		return nil, domain.NewValidationError("All fields are required")
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("Items array is required and cannot be empty")
	}

	order, err := s.repo.Create(ctx, &domain.Order{
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		Items:        in.Items,
		Total:        in.Total,
		Status:       domain.OrderPending,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.log.Info().Str("order_id", order.ID).Float64("total", order.Total).Msg("order placed")
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus moves an order to a new lifecycle state. Unknown statuses are
// rejected before touching the store.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !next.IsValid() {
		return nil, domain.NewValidationError("Valid status is required")
	}

	order, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("order_id", id).Str("status", status).Msg("order status updated")
	return order, nil
}
