package ports

import (
	"context"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
)

// AdminRepository persists seed-provisioned admin credentials. FindByEmail
// returns domain.ErrAdminNotFound when no admin matches.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	DeleteAll(ctx context.Context) error
}

// UserRepository persists customer accounts. Lookups return
// domain.ErrUserNotFound when no user matches; writes that violate the
// unique email index return domain.ErrEmailInUse.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
