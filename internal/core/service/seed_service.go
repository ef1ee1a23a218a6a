package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/apnakhakra/storefront-api/internal/core/auth"
	"github.com/apnakhakra/storefront-api/internal/core/domain"
	"github.com/apnakhakra/storefront-api/internal/core/ports"
)

// SeedService provisions the initial admin credentials and a demo catalog
// entry. The seed endpoint is a bootstrap convenience: it wipes products and
// admins before inserting, and is meant to be removed once the store is
// live.
type SeedService struct {
	admins        ports.AdminRepository
	products      ports.ProductRepository
	hasher        *auth.PasswordHasher
	adminEmail    string
	adminPassword string
	log           zerolog.Logger
}

func NewSeedService(
	admins ports.AdminRepository,
	products ports.ProductRepository,
	hasher *auth.PasswordHasher,
	adminEmail, adminPassword string,
	log zerolog.Logger,
) *SeedService {
	return &SeedService{
		admins:        admins,
		products:      products,
		hasher:        hasher,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		log:           log,
	}
}

func (s *SeedService) Seed(ctx context.Context) (*ports.SeedResult, error) {
	if err := s.products.DeleteAll(ctx); err != nil {
		return nil, err
	}
	if err := s.admins.DeleteAll(ctx); err != nil {
		return nil, err
	}

	product, err := s.products.Create(ctx, &domain.Product{
		Name:        "Premium Khakra",
		Slug:        "premium-khakra",
		Description: "Crispy, delicious traditional khakra made with finest ingredients. Perfect for snacking anytime!",
		Price:       299,
		ActualPrice: 299,
		Images: []string{
			"https://images.unsplash.com/photo-1608198093002-ad4e81c0a457?w=800",
			"https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=800",
		},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(s.adminPassword)
	if err != nil {
		return nil, err
	}
	admin, err := s.admins.Create(ctx, &domain.Admin{
		Email:        s.adminEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("admin_email", admin.Email).Str("product", product.Name).Msg("database seeded")

	return &ports.SeedResult{
		ProductName:   product.Name,
		AdminEmail:    admin.Email,
		AdminPassword: s.adminPassword,
	}, nil
}

func (s *SeedService) CheckAdmin(ctx context.Context) (*ports.AdminCheck, error) {
	admin, err := s.admins.FindByEmail(ctx, s.adminEmail)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return &ports.AdminCheck{Exists: false}, nil
		}
		return nil, err
	}
	return &ports.AdminCheck{Exists: true, Email: admin.Email}, nil
}
