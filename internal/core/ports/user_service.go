package ports

import (
	"context"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
)

// UpdateProfileInput carries a partial profile update. Name and Email apply
// only when non-empty; Phone and Address apply whenever present, including
// when set to the empty string.
type UpdateProfileInput struct {
	Name    string
	Email   string
	Phone   *string
	Address *string
}

// UserService exposes profile operations for authenticated customers.
type UserService interface {
	GetProfile(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*domain.User, error)
}
