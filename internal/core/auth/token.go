// Package auth holds the two credential primitives the services build on:
// a stateless HS256 token issuer/verifier and a bcrypt password hasher.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
)

// Claims are the fields embedded in every issued token. Subject carries the
// identity id.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies bearer tokens with a process-wide secret.
// Tokens are stateless; rotating the secret invalidates everything
// outstanding.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

const defaultTokenTTL = 12 * time.Hour

// NewTokenIssuer creates a TokenIssuer. A non-positive ttl falls back to the
// 12-hour default.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity, expiring after the configured
// TTL.
func (t *TokenIssuer) Issue(id, email, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded claims. Every
// failure mode (malformed, bad signature, expired, wrong algorithm) collapses
// to domain.ErrInvalidToken so callers cannot leak which check failed.
func (t *TokenIssuer) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tkn *jwt.Token) (interface{}, error) {
		if tkn.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
