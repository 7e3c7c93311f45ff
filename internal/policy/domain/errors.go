package domain

import (
	"fmt"

	apperrors "github.com/allisson/caconnectors/internal/errors"
)

// ErrPolicyNotFound indicates no policy exists with the requested name.
var ErrPolicyNotFound = apperrors.Wrap(apperrors.ErrNotFound, "policy not found")

// PolicyDeniedError is returned when policy evaluation denies an action.
type PolicyDeniedError struct {
	Action Action
}

func (e *PolicyDeniedError) Error() string {
	return fmt.Sprintf("%s is not allowed", e.Action)
}

// Unwrap exposes the generic forbidden error for status mapping.
func (e *PolicyDeniedError) Unwrap() error {
	return apperrors.ErrForbidden
}
