package auth

import (
	"context"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
)

// Verifier resolves a bearer token to an authenticated identity. The
// console's real session service implements this; a static token map ships
// for standalone runs.
type Verifier interface {
	Identify(ctx context.Context, token string) (*domain.Identity, error)
}

type staticVerifier struct {
	tokens map[string]domain.Identity
}

// NewStaticVerifier builds a Verifier over a fixed token -> identity map.
func NewStaticVerifier(tokens map[string]domain.Identity) Verifier {
	return &staticVerifier{tokens: tokens}
}

// Identify returns nil with no error for unknown tokens; the caller treats
// a nil identity as unauthenticated.
func (v *staticVerifier) Identify(_ context.Context, token string) (*domain.Identity, error) {
	identity, ok := v.tokens[token]
	if !ok {
		return nil, nil
	}
	return &identity, nil
}

type identityKey struct{}

// WithIdentity stores the authenticated identity on the request context.
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the authenticated identity, or nil when the
// request did not pass the auth middleware.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	identity, _ := ctx.Value(identityKey{}).(*domain.Identity)
	return identity
}
