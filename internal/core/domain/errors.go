package domain

import "errors"

// Sentinel errors form a closed taxonomy; the HTTP layer maps each to a
// status code and a stable client message in exactly one place. Login and
// password-reset failures deliberately collapse distinct root causes into a
// single sentinel so that responses cannot be used for account enumeration.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailInUse         = errors.New("email already in use")
	ErrAccountMismatch    = errors.New("email and phone do not match any account")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrSlugExists         = errors.New("product slug already exists")
	ErrOrderNotFound      = errors.New("order not found")
)

// ValidationError reports missing or malformed client input. The message is
// client-facing and stable per operation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with the given client message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}
