package service

import (
	"context"
	"time"
)

// TokenClaims is what the client can read from a bearer token without the
// signing secret.
type TokenClaims struct {
	Subject   string
	Role      string
	SellerID  string
	ExpiresAt time.Time // Zero when the token carries no exp claim
}

// Expired reports whether the token is past its expiry at now.
func (c *TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// TokenInspector reads claims from a token without verifying its signature.
type TokenInspector interface {
	Inspect(token string) (*TokenClaims, error)
}

// TokenStore persists the session's bearer token.
type TokenStore interface {
	// Token returns the stored token, or "" when there is none or it expired.
	Token(ctx context.Context) (string, error)

	// Set stores a new token.
	Set(ctx context.Context, token string) error

	// Clear forgets the token.
	Clear(ctx context.Context) error
}
