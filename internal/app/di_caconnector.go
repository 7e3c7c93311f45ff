package app

import (
	"fmt"

	caHTTP "github.com/allisson/caconnectors/internal/caconnector/http"
	caRepository "github.com/allisson/caconnectors/internal/caconnector/repository"
	caService "github.com/allisson/caconnectors/internal/caconnector/service"
	caUseCase "github.com/allisson/caconnectors/internal/caconnector/usecase"
	"github.com/allisson/caconnectors/internal/database"
)

// ConnectorRegistry returns the connector type registry with the built-in types registered.
func (c *Container) ConnectorRegistry() (*caService.Registry, error) {
	return c.connectorRegistry.get(func() (*caService.Registry, error) {
		registry := caService.NewRegistry()
		if err := registry.Register(caService.LocalType, caService.NewLocalFactory()); err != nil {
			return nil, fmt.Errorf("failed to register %s connector type: %w", caService.LocalType, err)
		}
		return registry, nil
	})
}

// ConnectorRepository returns the connector repository for the configured database driver.
func (c *Container) ConnectorRepository() (caUseCase.ConnectorRepository, error) {
	return c.connectorRepository.get(func() (caUseCase.ConnectorRepository, error) {
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for connector repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			return caRepository.NewMySQLConnectorRepository(db), nil
		case database.DriverPostgres:
			return caRepository.NewPostgreSQLConnectorRepository(db), nil
		default:
			return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
}

// ConnectorUseCase returns the unauthenticated connector store used by operator commands.
func (c *Container) ConnectorUseCase() (caUseCase.ConnectorUseCase, error) {
	return c.connectorUseCase.get(func() (caUseCase.ConnectorUseCase, error) {
		txManager, err := c.TxManager()
		if err != nil {
			return nil, fmt.Errorf("failed to get tx manager for connector use case: %w", err)
		}

		repo, err := c.ConnectorRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to get connector repository for connector use case: %w", err)
		}

		registry, err := c.ConnectorRegistry()
		if err != nil {
			return nil, err
		}

		return caUseCase.NewConnectorUseCase(txManager, repo, registry), nil
	})
}

// AccessGate returns the role and policy gated connector API wrapped with metrics.
func (c *Container) AccessGate() (caUseCase.AccessGate, error) {
	return c.accessGate.get(func() (caUseCase.AccessGate, error) {
		useCase, err := c.ConnectorUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get connector use case for access gate: %w", err)
		}

		checker, err := c.PolicyChecker()
		if err != nil {
			return nil, fmt.Errorf("failed to get policy checker for access gate: %w", err)
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for access gate: %w", err)
		}

		return caUseCase.NewAccessGateWithMetrics(
			caUseCase.NewAccessGate(useCase, checker, c.Logger()),
			businessMetrics,
		), nil
	})
}

// ConnectorHandler returns the HTTP handler for CA connectors.
func (c *Container) ConnectorHandler() (*caHTTP.ConnectorHandler, error) {
	gate, err := c.AccessGate()
	if err != nil {
		return nil, fmt.Errorf("failed to get access gate for connector handler: %w", err)
	}
	return caHTTP.NewConnectorHandler(gate, c.Logger()), nil
}
