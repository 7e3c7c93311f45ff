package app

import (
	"fmt"

	"github.com/allisson/caconnectors/internal/database"
	policyHTTP "github.com/allisson/caconnectors/internal/policy/http"
	policyRepository "github.com/allisson/caconnectors/internal/policy/repository"
	policyService "github.com/allisson/caconnectors/internal/policy/service"
	policyUseCase "github.com/allisson/caconnectors/internal/policy/usecase"
)

// PolicyRepository returns the policy repository for the configured database driver.
func (c *Container) PolicyRepository() (policyUseCase.PolicyRepository, error) {
	return c.policyRepository.get(func() (policyUseCase.PolicyRepository, error) {
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for policy repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			return policyRepository.NewMySQLPolicyRepository(db), nil
		case database.DriverPostgres:
			return policyRepository.NewPostgreSQLPolicyRepository(db), nil
		default:
			return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
}

// PolicyUseCase returns the policy management use case wrapped with metrics.
func (c *Container) PolicyUseCase() (policyUseCase.PolicyUseCase, error) {
	return c.policyUseCase.get(func() (policyUseCase.PolicyUseCase, error) {
		txManager, err := c.TxManager()
		if err != nil {
			return nil, fmt.Errorf("failed to get tx manager for policy use case: %w", err)
		}

		repo, err := c.PolicyRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to get policy repository for policy use case: %w", err)
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for policy use case: %w", err)
		}

		return policyUseCase.NewPolicyUseCaseWithMetrics(
			policyUseCase.NewPolicyUseCase(txManager, repo),
			businessMetrics,
		), nil
	})
}

// PolicyChecker returns the evaluator backed checker wrapped with metrics.
func (c *Container) PolicyChecker() (policyUseCase.PolicyChecker, error) {
	return c.policyChecker.get(func() (policyUseCase.PolicyChecker, error) {
		repo, err := c.PolicyRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to get policy repository for policy checker: %w", err)
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for policy checker: %w", err)
		}

		return policyUseCase.NewPolicyCheckerWithMetrics(
			policyUseCase.NewPolicyChecker(repo, policyService.NewEvaluator(), c.Logger()),
			businessMetrics,
		), nil
	})
}

// PolicyHandler returns the HTTP handler for policy management.
func (c *Container) PolicyHandler() (*policyHTTP.PolicyHandler, error) {
	useCase, err := c.PolicyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get policy use case for policy handler: %w", err)
	}
	return policyHTTP.NewPolicyHandler(useCase, c.Logger()), nil
}
