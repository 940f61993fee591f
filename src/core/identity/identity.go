// Package identity resolves the calling user's durable identifier from a
// session token. The identifier is resolved once at the request boundary and
// threaded through context; nothing below the handler layer ever reads it
// from request input.
package identity

import (
	"context"
	"errors"
)

// ErrUnauthenticated signals that no valid session exists for the request.
var ErrUnauthenticated = errors.New("unauthenticated")

// Verifier checks a session token against the identity provider and returns
// the owner identifier it is bound to.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type ctxKey struct{}

// WithOwner returns a context carrying the resolved owner identifier.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ownerID)
}

// OwnerFromContext extracts the owner identifier resolved at the request
// boundary.
func OwnerFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
