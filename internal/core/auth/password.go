package auth

import "golang.org/x/crypto/bcrypt"

// DefaultHashCost is the bcrypt work factor used in production.
const DefaultHashCost = 10

// PasswordHasher wraps bcrypt with a fixed work factor.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher. A cost outside bcrypt's valid range
// falls back to DefaultHashCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produces a salted hash of plaintext. Failure here is an internal
// error, never a validation problem.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hash. bcrypt's comparison is
// constant-time over the derived key.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
