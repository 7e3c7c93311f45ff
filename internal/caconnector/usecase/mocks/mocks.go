// Package mocks provides mock implementations for testing CA connector consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
)

// MockConnectorUseCase is a mock implementation of ConnectorUseCase.
type MockConnectorUseCase struct {
	mock.Mock
}

// Save mocks the Save method.
func (m *MockConnectorUseCase) Save(ctx context.Context, input *caDomain.SaveConnectorInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

// List mocks the List method.
func (m *MockConnectorUseCase) List(
	ctx context.Context,
	filter caDomain.ListFilter,
) ([]*caDomain.CAConnector, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*caDomain.CAConnector), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockConnectorUseCase) Delete(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// DescribeType mocks the DescribeType method.
func (m *MockConnectorUseCase) DescribeType(
	ctx context.Context,
	typeID string,
) (map[string]caDomain.OptionDescription, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]caDomain.OptionDescription), args.Error(1)
}

// MockAccessGate is a mock implementation of AccessGate.
type MockAccessGate struct {
	mock.Mock
}

// Save mocks the Save method.
func (m *MockAccessGate) Save(
	ctx context.Context,
	principal *authDomain.Principal,
	input *caDomain.SaveConnectorInput,
) (int64, error) {
	args := m.Called(ctx, principal, input)
	return args.Get(0).(int64), args.Error(1)
}

// List mocks the List method.
func (m *MockAccessGate) List(
	ctx context.Context,
	principal *authDomain.Principal,
	filter caDomain.ListFilter,
) ([]*caDomain.CAConnector, error) {
	args := m.Called(ctx, principal, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*caDomain.CAConnector), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockAccessGate) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	name string,
) (int64, error) {
	args := m.Called(ctx, principal, name)
	return args.Get(0).(int64), args.Error(1)
}

// DescribeType mocks the DescribeType method.
func (m *MockAccessGate) DescribeType(
	ctx context.Context,
	principal *authDomain.Principal,
	typeID string,
) (map[string]caDomain.OptionDescription, error) {
	args := m.Called(ctx, principal, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]caDomain.OptionDescription), args.Error(1)
}
