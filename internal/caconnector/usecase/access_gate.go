package usecase

import (
	"context"
	"log/slog"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
	policyUseCase "github.com/allisson/caconnectors/internal/policy/usecase"
)

// accessGate runs role check, policy check, store call and result shaping in that order.
type accessGate struct {
	connectorUseCase ConnectorUseCase
	policyChecker    policyUseCase.PolicyChecker
	logger           *slog.Logger
}

// authorize checks the role and, when action is set, the policy.
func (g *accessGate) authorize(
	ctx context.Context,
	principal *authDomain.Principal,
	action policyDomain.Action,
	roles ...authDomain.Role,
) error {
	if err := authDomain.RequireRole(principal, roles...); err != nil {
		return err
	}
	if action == "" {
		return nil
	}
	return g.policyChecker.Check(ctx, principal, action)
}

// Save authorizes and stores a connector.
func (g *accessGate) Save(
	ctx context.Context,
	principal *authDomain.Principal,
	input *caDomain.SaveConnectorInput,
) (int64, error) {
	if err := g.authorize(ctx, principal, policyDomain.ActionCAConnectorWrite, authDomain.RoleAdmin); err != nil {
		return 0, err
	}

	id, err := g.connectorUseCase.Save(ctx, input)
	if err != nil {
		return 0, err
	}

	g.logger.Info("ca connector saved",
		slog.String("connector", input.Name),
		slog.String("type", input.Type),
		slog.Int64("id", id),
		slog.String("username", principal.Username))

	return id, nil
}

// List authorizes and lists connectors, masking data for non-admin principals.
func (g *accessGate) List(
	ctx context.Context,
	principal *authDomain.Principal,
	filter caDomain.ListFilter,
) ([]*caDomain.CAConnector, error) {
	err := g.authorize(ctx, principal, policyDomain.ActionCAConnectorRead,
		authDomain.RoleAdmin, authDomain.RoleUser)
	if err != nil {
		return nil, err
	}

	connectors, err := g.connectorUseCase.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if principal.IsAdmin() {
		return connectors, nil
	}

	masked := make([]*caDomain.CAConnector, 0, len(connectors))
	for _, c := range connectors {
		masked = append(masked, c.Masked())
	}
	return masked, nil
}

// Delete authorizes by role only and removes a connector.
func (g *accessGate) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	name string,
) (int64, error) {
	if err := g.authorize(ctx, principal, "", authDomain.RoleAdmin); err != nil {
		return 0, err
	}

	count, err := g.connectorUseCase.Delete(ctx, name)
	if err != nil {
		return 0, err
	}

	g.logger.Info("ca connector deleted",
		slog.String("connector", name),
		slog.Int64("count", count),
		slog.String("username", principal.Username))

	return count, nil
}

// DescribeType authorizes and returns the option descriptions of a type.
func (g *accessGate) DescribeType(
	ctx context.Context,
	principal *authDomain.Principal,
	typeID string,
) (map[string]caDomain.OptionDescription, error) {
	if err := g.authorize(ctx, principal, policyDomain.ActionCAConnectorRead, authDomain.RoleAdmin); err != nil {
		return nil, err
	}
	return g.connectorUseCase.DescribeType(ctx, typeID)
}

// NewAccessGate creates an AccessGate in front of connectorUseCase.
func NewAccessGate(
	connectorUseCase ConnectorUseCase,
	policyChecker policyUseCase.PolicyChecker,
	logger *slog.Logger,
) AccessGate {
	return &accessGate{
		connectorUseCase: connectorUseCase,
		policyChecker:    policyChecker,
		logger:           logger,
	}
}
