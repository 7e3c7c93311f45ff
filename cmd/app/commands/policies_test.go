package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/caconnectors/internal/errors"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
	policyMocks "github.com/allisson/caconnectors/internal/policy/usecase/mocks"
)

func TestRunSetPolicy(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	input := &policyDomain.SetPolicyInput{
		Name:   "readers",
		Scope:  policyDomain.ScopeUser,
		Action: "caconnectorread",
		Active: true,
	}
	stored := &policyDomain.Policy{
		ID:        7,
		Name:      "readers",
		Scope:     policyDomain.ScopeUser,
		Action:    "caconnectorread",
		Active:    true,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &policyMocks.MockPolicyUseCase{}
		mockUseCase.On("Set", ctx, input).Return(stored, nil)

		var out bytes.Buffer
		err := RunSetPolicy(ctx, mockUseCase, logger, &out, input, "text")

		require.NoError(t, err)
		require.Equal(t, "Policy \"readers\" set (id 7)\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &policyMocks.MockPolicyUseCase{}
		mockUseCase.On("Set", ctx, input).Return(stored, nil)

		var out bytes.Buffer
		err := RunSetPolicy(ctx, mockUseCase, logger, &out, input, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"id": 7`)
		require.Contains(t, out.String(), `"scope": "user"`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("usecase-error", func(t *testing.T) {
		mockUseCase := &policyMocks.MockPolicyUseCase{}
		mockUseCase.On("Set", ctx, input).Return(nil, apperrors.ErrInvalidInput)

		err := RunSetPolicy(ctx, mockUseCase, logger, &bytes.Buffer{}, input, "text")

		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
		require.Contains(t, err.Error(), "failed to set policy")
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockUseCase := &policyMocks.MockPolicyUseCase{}

		err := RunSetPolicy(ctx, mockUseCase, logger, &bytes.Buffer{}, input, "xml")

		require.Error(t, err)
		mockUseCase.AssertNotCalled(t, "Set")
	})
}

func TestRunDeletePolicy(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("success", func(t *testing.T) {
		mockUseCase := &policyMocks.MockPolicyUseCase{}
		mockUseCase.On("Delete", ctx, "readers").Return(int64(1), nil)

		var out bytes.Buffer
		err := RunDeletePolicy(ctx, mockUseCase, logger, &out, "readers")

		require.NoError(t, err)
		require.Equal(t, "Deleted 1 policy(ies)\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("not-found", func(t *testing.T) {
		mockUseCase := &policyMocks.MockPolicyUseCase{}
		mockUseCase.On("Delete", ctx, "missing").Return(int64(0), policyDomain.ErrPolicyNotFound)

		err := RunDeletePolicy(ctx, mockUseCase, logger, &bytes.Buffer{}, "missing")

		require.ErrorIs(t, err, policyDomain.ErrPolicyNotFound)
	})
}

func TestRunListPolicies(t *testing.T) {
	ctx := context.Background()
	active := true
	filter := policyDomain.PolicyFilter{Scope: policyDomain.ScopeAdmin, Active: &active}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &policyMocks.MockPolicyUseCase{}
		mockUseCase.On("List", ctx, filter).Return([]*policyDomain.Policy{
			{ID: 1, Name: "writers", Scope: policyDomain.ScopeAdmin, Action: "caconnectorwrite", Active: true},
			{ID: 2, Name: "realm1", Scope: policyDomain.ScopeAdmin, Action: "caconnectorread", Realm: "realm1", Active: true},
		}, nil)

		var out bytes.Buffer
		err := RunListPolicies(ctx, mockUseCase, &out, filter, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "writers\tscope=admin\trealm=*\tactive=true\taction=caconnectorwrite\n")
		require.Contains(t, out.String(), "realm1\tscope=admin\trealm=realm1")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("empty", func(t *testing.T) {
		mockUseCase := &policyMocks.MockPolicyUseCase{}
		mockUseCase.On("List", ctx, filter).Return([]*policyDomain.Policy{}, nil)

		var out bytes.Buffer
		require.NoError(t, RunListPolicies(ctx, mockUseCase, &out, filter, "text"))
		require.Equal(t, "No policies found\n", out.String())
	})

	t.Run("empty-json", func(t *testing.T) {
		mockUseCase := &policyMocks.MockPolicyUseCase{}
		mockUseCase.On("List", ctx, filter).Return([]*policyDomain.Policy{}, nil)

		var out bytes.Buffer
		require.NoError(t, RunListPolicies(ctx, mockUseCase, &out, filter, "json"))
		require.Equal(t, "[]\n", out.String())
	})

	t.Run("usecase-error", func(t *testing.T) {
		mockUseCase := &policyMocks.MockPolicyUseCase{}
		mockUseCase.On("List", ctx, filter).Return(nil, errors.New("db down"))

		err := RunListPolicies(ctx, mockUseCase, &bytes.Buffer{}, filter, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to list policies: db down")
	})
}
