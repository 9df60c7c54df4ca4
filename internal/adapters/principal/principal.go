// Package principal supplies CurrentPrincipal implementations: a static id
// for batch work and tests, and a token-backed source that reads the acting
// user's id from a signed token carried on the context by the transport.
package principal

import (
	"context"
	"errors"

	"globoticket/internal/domain"
)

// ErrNoPrincipal is returned when no acting principal can be resolved for
// the current unit of work.
var ErrNoPrincipal = errors.New("no acting principal")

type staticPrincipal struct {
	id string
}

// Static returns a CurrentPrincipal that always reports the given id.
func Static(id string) domain.CurrentPrincipal {
	return staticPrincipal{id: id}
}

func (p staticPrincipal) ID(ctx context.Context) (string, error) {
	if p.id == "" {
		return "", ErrNoPrincipal
	}
	return p.id, nil
}

type contextKey string

const tokenKey contextKey = "principalToken"

// WithToken returns a context carrying the raw principal token. The
// transport layer sets it; token-backed principals read it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func tokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}
