// Package domain defines the caller identity model and the structural role check.
//
// A Principal is produced by the transport layer after token verification and carries
// the role, username and realm that policy evaluation and data masking depend on.
package domain

import (
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/allisson/caconnectors/internal/errors"
)

// Role is the structural class of an authenticated caller.
type Role string

const (
	// RoleAdmin identifies administrators.
	RoleAdmin Role = "admin"

	// RoleUser identifies self-service users.
	RoleUser Role = "user"

	// RoleAnonymous identifies callers that presented no credentials.
	RoleAnonymous Role = "anonymous"
)

// ParseRole converts a string into a Role. Unknown values are rejected.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	case RoleAnonymous:
		return RoleAnonymous, nil
	default:
		return "", apperrors.Wrapf(apperrors.ErrInvalidInput, "unknown role %q", s)
	}
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	Role     Role
	Username string
	Realm    string
}

// Anonymous returns the principal used for requests without credentials.
func Anonymous() *Principal {
	return &Principal{Role: RoleAnonymous}
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// RoleMissingError is returned when a principal lacks the role an operation requires.
// Its message names the required role set.
type RoleMissingError struct {
	Required []Role
}

func (e *RoleMissingError) Error() string {
	quoted := make([]string, 0, len(e.Required))
	for _, r := range e.Required {
		quoted = append(quoted, fmt.Sprintf("'%s'", r))
	}
	return fmt.Sprintf(
		"You do not have the necessary role ([%s]) to access this resource!",
		strings.Join(quoted, ", "),
	)
}

// Unwrap exposes the generic insufficient role error for status mapping.
func (e *RoleMissingError) Unwrap() error {
	return apperrors.ErrInsufficientRole
}

// RequireRole fails with a RoleMissingError unless the principal holds one of the
// allowed roles. A nil principal is treated as anonymous.
func RequireRole(p *Principal, allowed ...Role) error {
	if p != nil && slices.Contains(allowed, p.Role) {
		return nil
	}
	return &RoleMissingError{Required: allowed}
}
