// Package http provides HTTP middleware and utilities for caller authentication.
package http

import (
	"context"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
)

// principalKey is a context key type for storing the request principal.
type principalKey struct{}

// WithPrincipal stores the request principal in the context.
// This is typically called by the authentication middleware.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the request principal from the context.
// Returns (principal, true) if present, or (nil, false) if the middleware did not run.
func GetPrincipal(ctx context.Context) (*authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal, ok && principal != nil
}

// PrincipalOrAnonymous returns the request principal, or the anonymous principal when
// none was stored.
func PrincipalOrAnonymous(ctx context.Context) *authDomain.Principal {
	if principal, ok := GetPrincipal(ctx); ok {
		return principal
	}
	return authDomain.Anonymous()
}
