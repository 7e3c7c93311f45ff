package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("Success_PreservesChain", func(t *testing.T) {
		err := Wrap(ErrInvalidInput, "unknown connector type")

		assert.EqualError(t, err, "unknown connector type: invalid input")
		assert.True(t, Is(err, ErrInvalidInput))
		assert.False(t, Is(err, ErrNotFound))
	})

	t.Run("Success_NilError", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "ignored"))
		assert.NoError(t, Wrapf(nil, "ignored %d", 1))
	})

	t.Run("Success_Formatted", func(t *testing.T) {
		err := Wrapf(ErrNotFound, "policy %q", "readers")

		assert.EqualError(t, err, `policy "readers": not found`)
		assert.True(t, Is(err, ErrNotFound))
	})
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"unclassified", errors.New("disk full"), nil},
		{"direct", ErrConflict, ErrConflict},
		{"wrapped", Wrap(ErrForbidden, "caconnectorwrite is not allowed"), ErrForbidden},
		{"fmt wrapped", fmt.Errorf("save: %w", Wrap(ErrInvalidInput, "bad")), ErrInvalidInput},
		{"role wins over forbidden", errors.Join(ErrForbidden, ErrInsufficientRole), ErrInsufficientRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

type codedError struct{ code int }

func (c *codedError) Error() string { return "coded" }

func TestAs(t *testing.T) {
	err := Wrap(&codedError{code: 7}, "context")

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, 7, target.code)
	assert.Nil(t, Kind(err))
}
