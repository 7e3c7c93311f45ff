// Package usecase implements CA connector storage and the access gate in front of it.
package usecase

import (
	"context"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
)

// ConnectorRepository defines persistence operations for CA connectors.
// Implementations must support transaction-aware operations via context propagation.
type ConnectorRepository interface {
	// Upsert creates the connector row or updates its type, returning the stable id.
	Upsert(ctx context.Context, name, typeID string) (int64, error)

	// GetByName retrieves a connector with its data. Returns ErrConnectorNotFound if absent.
	GetByName(ctx context.Context, name string) (*caDomain.CAConnector, error)

	// SetConfig inserts or overwrites the given configuration keys of a connector.
	// Keys not present in data are left untouched.
	SetConfig(ctx context.Context, connectorID int64, data map[string]string) error

	// List returns connectors matching the filter in id order.
	List(ctx context.Context, filter caDomain.ListFilter) ([]*caDomain.CAConnector, error)

	// Delete removes a connector and its configuration, returning the removed row count.
	Delete(ctx context.Context, name string) (int64, error)
}

// ConnectorUseCase manages stored connectors without any authorization. Operator
// surfaces use it directly; principals go through AccessGate.
type ConnectorUseCase interface {
	// Save creates or updates a connector, merging data into the stored configuration.
	// Returns ErrUnknownType for unregistered types and ErrInvalidInput when the merged
	// configuration is rejected by the type.
	Save(ctx context.Context, input *caDomain.SaveConnectorInput) (int64, error)

	// List returns connectors matching the filter with their data.
	List(ctx context.Context, filter caDomain.ListFilter) ([]*caDomain.CAConnector, error)

	// Delete removes a connector by name. Returns 0 when it did not exist.
	Delete(ctx context.Context, name string) (int64, error)

	// DescribeType returns the option descriptions of a registered type.
	DescribeType(ctx context.Context, typeID string) (map[string]caDomain.OptionDescription, error)
}

// AccessGate authorizes a principal for a connector operation and shapes the result.
// The role check always runs first, then the policy check, then the store call.
type AccessGate interface {
	// Save requires the admin role and the caconnectorwrite action.
	Save(
		ctx context.Context,
		principal *authDomain.Principal,
		input *caDomain.SaveConnectorInput,
	) (int64, error)

	// List requires the admin or user role and the caconnectorread action. Results for
	// non-admin principals carry empty data.
	List(
		ctx context.Context,
		principal *authDomain.Principal,
		filter caDomain.ListFilter,
	) ([]*caDomain.CAConnector, error)

	// Delete requires the admin role. Policies are not consulted.
	Delete(ctx context.Context, principal *authDomain.Principal, name string) (int64, error)

	// DescribeType requires the admin role and the caconnectorread action.
	DescribeType(
		ctx context.Context,
		principal *authDomain.Principal,
		typeID string,
	) (map[string]caDomain.OptionDescription, error)
}
