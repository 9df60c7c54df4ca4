package principal

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"globoticket/internal/domain"
)

type tokenPrincipal struct {
	secret []byte
}

// NewTokenPrincipal returns a CurrentPrincipal that resolves the acting
// user's id from an HS256-signed token on the context. The token's subject
// claim is the opaque principal id.
func NewTokenPrincipal(secret string) domain.CurrentPrincipal {
	return &tokenPrincipal{secret: []byte(secret)}
}

func (p *tokenPrincipal) ID(ctx context.Context) (string, error) {
	raw, ok := tokenFromContext(ctx)
	if !ok {
		return "", ErrNoPrincipal
	}
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse principal token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrNoPrincipal
	}
	return claims.Subject, nil
}
