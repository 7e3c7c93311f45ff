package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/allisson/caconnectors/internal/errors"
)

// ErrUnknownType indicates the connector type is not registered.
var ErrUnknownType = apperrors.Wrap(apperrors.ErrInvalidInput, "unknown connector type")

// ErrTypeAlreadyRegistered indicates a second registration for the same type id.
var ErrTypeAlreadyRegistered = apperrors.Wrap(apperrors.ErrConflict, "connector type already registered")

// UnknownType returns ErrUnknownType annotated with the offending type and, when given,
// the registered ones.
func UnknownType(typeID string, registered ...string) error {
	if len(registered) == 0 {
		return fmt.Errorf("%q: %w", typeID, ErrUnknownType)
	}
	return fmt.Errorf("%q (registered: %s): %w", typeID, strings.Join(registered, ", "), ErrUnknownType)
}

// InvalidConfig wraps a type specific validation failure as invalid input.
func InvalidConfig(typeID string, err error) error {
	return fmt.Errorf("invalid %s connector configuration: %v: %w", typeID, err, apperrors.ErrInvalidInput)
}

// ErrConnectorNotFound is returned by point lookups of absent connectors. Listing and
// deleting absent connectors yield empty results instead.
var ErrConnectorNotFound = apperrors.Wrap(apperrors.ErrNotFound, "ca connector not found")
