// Package mocks provides mock implementations for testing policy consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
)

// MockPolicyRepository is a mock implementation of PolicyRepository.
type MockPolicyRepository struct {
	mock.Mock
}

// Upsert mocks the Upsert method.
func (m *MockPolicyRepository) Upsert(ctx context.Context, policy *policyDomain.Policy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

// Get mocks the Get method.
func (m *MockPolicyRepository) Get(ctx context.Context, name string) (*policyDomain.Policy, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policyDomain.Policy), args.Error(1)
}

// List mocks the List method.
func (m *MockPolicyRepository) List(
	ctx context.Context,
	filter policyDomain.PolicyFilter,
) ([]*policyDomain.Policy, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*policyDomain.Policy), args.Error(1)
}

// ListActiveByScope mocks the ListActiveByScope method.
func (m *MockPolicyRepository) ListActiveByScope(
	ctx context.Context,
	scope policyDomain.Scope,
) ([]*policyDomain.Policy, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*policyDomain.Policy), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockPolicyRepository) Delete(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// MockPolicyUseCase is a mock implementation of PolicyUseCase.
type MockPolicyUseCase struct {
	mock.Mock
}

// Set mocks the Set method.
func (m *MockPolicyUseCase) Set(
	ctx context.Context,
	input *policyDomain.SetPolicyInput,
) (*policyDomain.Policy, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policyDomain.Policy), args.Error(1)
}

// Get mocks the Get method.
func (m *MockPolicyUseCase) Get(ctx context.Context, name string) (*policyDomain.Policy, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policyDomain.Policy), args.Error(1)
}

// List mocks the List method.
func (m *MockPolicyUseCase) List(
	ctx context.Context,
	filter policyDomain.PolicyFilter,
) ([]*policyDomain.Policy, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*policyDomain.Policy), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockPolicyUseCase) Delete(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// MockPolicyChecker is a mock implementation of PolicyChecker.
type MockPolicyChecker struct {
	mock.Mock
}

// Evaluate mocks the Evaluate method.
func (m *MockPolicyChecker) Evaluate(
	ctx context.Context,
	principal *authDomain.Principal,
	action policyDomain.Action,
) (policyDomain.Decision, error) {
	args := m.Called(ctx, principal, action)
	return args.Get(0).(policyDomain.Decision), args.Error(1)
}

// Check mocks the Check method.
func (m *MockPolicyChecker) Check(
	ctx context.Context,
	principal *authDomain.Principal,
	action policyDomain.Action,
) error {
	args := m.Called(ctx, principal, action)
	return args.Error(0)
}
