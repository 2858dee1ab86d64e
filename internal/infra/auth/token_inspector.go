// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"sitesnap/internal/domain/service"
	"sitesnap/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector is a concrete implementation of the TokenInspector interface using the JWT standard.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Inspect parses the token without checking its signature.
func (i *jwtInspector) Inspect(token string) (*service.TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	out := &service.TokenClaims{
		Role:     stringClaim(claims, "role"),
		SellerID: stringClaim(claims, "seller_id"),
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		out.Subject = sub
	} else {
		// Backends that sign {id: ...} instead of sub.
		out.Subject = stringClaim(claims, "id")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "invalid exp claim")
	}
	if exp != nil {
		out.ExpiresAt = exp.Time.In(time.UTC)
	}

	return out, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}

	return ""
}
