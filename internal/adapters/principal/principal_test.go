package principal

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	ctx := context.Background()

	id, err := Static("user-1").ID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)

	_, err = Static("").ID(ctx)
	require.ErrorIs(t, err, ErrNoPrincipal)
}

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestTokenPrincipal_ID(t *testing.T) {
	secret := "test-secret"
	p := NewTokenPrincipal(secret)

	ctx := WithToken(context.Background(), signToken(t, secret, "user-123"))
	id, err := p.ID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
}

func TestTokenPrincipal_ID_Errors(t *testing.T) {
	secret := "test-secret"
	p := NewTokenPrincipal(secret)

	// No token on the context.
	_, err := p.ID(context.Background())
	require.ErrorIs(t, err, ErrNoPrincipal)

	// Wrong secret.
	ctx := WithToken(context.Background(), signToken(t, "other-secret", "user-123"))
	_, err = p.ID(ctx)
	require.Error(t, err)

	// No subject claim.
	ctx = WithToken(context.Background(), signToken(t, secret, ""))
	_, err = p.ID(ctx)
	require.ErrorIs(t, err, ErrNoPrincipal)
}
