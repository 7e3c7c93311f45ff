// Package service provides technical services for caller authentication.
//
// Callers authenticate with signed bearer tokens. A token carries the caller's role,
// username and realm and is verified without a database lookup.
package service

import (
	"time"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
)

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	// Issue signs a token for the principal valid for ttl. A non-positive ttl falls back
	// to the service default.
	Issue(principal *authDomain.Principal, ttl time.Duration) (string, time.Time, error)

	// Verify parses and validates a token and returns the principal it carries.
	// Any failure wraps ErrUnauthorized.
	Verify(token string) (*authDomain.Principal, error)
}
