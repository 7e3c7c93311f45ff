// Package errors holds the error kinds shared by every module. Domain packages wrap these
// sentinels; transports classify errors with Kind and never inspect messages.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientRole: the caller's role does not permit the operation at all.
	ErrInsufficientRole = errors.New("insufficient role")

	// ErrUnauthorized: missing, malformed or expired credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden: the role is sufficient but a policy denies the action.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput: the request failed validation.
	ErrInvalidInput = errors.New("invalid input")

	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// kinds is ordered by precedence. An error wrapping several sentinels is classified by
// the first match.
var kinds = []error{
	ErrInsufficientRole,
	ErrUnauthorized,
	ErrForbidden,
	ErrInvalidInput,
	ErrNotFound,
	ErrConflict,
}

// Kind returns the sentinel err is classified as, or nil for unclassified errors.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Wrap prefixes err with message, keeping it matchable with Is. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
