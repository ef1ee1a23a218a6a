package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/apnakhakra/storefront-api/internal/api/metrics"
	"github.com/apnakhakra/storefront-api/internal/core/auth"
	"github.com/apnakhakra/storefront-api/internal/core/domain"
	"github.com/apnakhakra/storefront-api/internal/core/ports"
)

// AuthService implements registration, dual-role login, and phone-verified
// password reset over two independent credential collections.
type AuthService struct {
	admins ports.AdminRepository
	users  ports.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(
	admins ports.AdminRepository,
	users ports.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenIssuer,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{admins: admins, users: users, hasher: hasher, tokens: tokens, log: log}
}

// Register creates a customer account. The email is lowercased and must not
// exist in either the admin or the user collection; each collection only
// enforces uniqueness within itself, so the cross-collection check lives
// here. The check and the insert are not atomic; a concurrent duplicate
// registration can slip through the window (known limitation).
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.NewValidationError("Name, email and password are required")
	}

	email := strings.ToLower(in.Email)

	identity, err := s.lookupIdentity(ctx, email)
	if err != nil {
		return nil, err
	}
	if identity != nil {
		return nil, domain.ErrEmailInUse
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email, domain.RoleUser)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Str("email", user.Email).Msg("user registered")

	return &ports.AuthResult{
		Token: token,
		Email: user.Email,
		Role:  domain.RoleUser,
		Name:  user.Name,
		Phone: user.Phone,
	}, nil
}

// Login authenticates either role from the shared endpoint. Admins are tried
// first, so an admin deterministically wins if both collections somehow hold
// the same email. Every failure root (no admin, no user, wrong password)
// returns the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.NewValidationError("Email and password are required")
	}

	identity, err := s.lookupIdentity(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if identity == nil {
		metrics.LoginsTotal.WithLabelValues("none", "failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, identity.PasswordHash()) {
		metrics.LoginsTotal.WithLabelValues(identity.Role, "failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(identity.ID(), identity.Email(), identity.Role)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues(identity.Role, "success").Inc()
	s.log.Info().Str("email", identity.Email()).Str("role", identity.Role).Msg("login")

	result := &ports.AuthResult{
		Token: token,
		Email: identity.Email(),
		Role:  identity.Role,
	}
	if identity.Role == domain.RoleUser {
		result.Name = identity.User.Name
		result.Phone = identity.User.Phone
		result.Address = identity.User.Address
	}
	return result, nil
}

// ResetPassword replaces a user's password after matching email and phone.
// Missing user and phone mismatch return the same ErrAccountMismatch so the
// response never reveals which field was wrong. An empty submitted phone is
// legal and matches an account whose stored phone is also empty. Admin
// credentials cannot be reset through this path.
func (s *AuthService) ResetPassword(ctx context.Context, email, phone, newPassword string) error {
	if email == "" || newPassword == "" {
		return domain.NewValidationError("Email and new password are required")
	}
	if len(newPassword) < 6 {
		return domain.NewValidationError("New password must be at least 6 characters")
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.PasswordResetsTotal.WithLabelValues("mismatch").Inc()
			return domain.ErrAccountMismatch
		}
		return err
	}

	if domain.NormalizePhone(phone) != domain.NormalizePhone(user.Phone) {
		metrics.PasswordResetsTotal.WithLabelValues("mismatch").Inc()
		return domain.ErrAccountMismatch
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("email", user.Email).Msg("password reset")
	return nil
}

// lookupIdentity resolves an email across both collections, admin first.
// A nil identity with nil error means no match anywhere.
func (s *AuthService) lookupIdentity(ctx context.Context, email string) (*domain.Identity, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err == nil {
		return &domain.Identity{Role: domain.RoleAdmin, Admin: admin}, nil
	}
	if !errors.Is(err, domain.ErrAdminNotFound) {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return &domain.Identity{Role: domain.RoleUser, User: user}, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	return nil, nil
}
