package ports

import "context"

// RegisterInput carries a registration request. Phone is optional and
// defaults to empty.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// AuthResult is the outcome of a successful register or login. Name, Phone
// and Address are populated only when Role is "user"; admins carry no
// profile fields.
type AuthResult struct {
	Token   string
	Email   string
	Role    string
	Name    string
	Phone   string
	Address string
}

// AuthService implements the authentication core: registration, dual-role
// login, and phone-verified password reset.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// ResetPassword verifies email+phone and replaces the user's password
	// hash. No token is returned; the caller must log in again.
	ResetPassword(ctx context.Context, email, phone, newPassword string) error
}
