package usecase

import (
	"context"
	"log/slog"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
	policyService "github.com/allisson/caconnectors/internal/policy/service"
)

// policyChecker loads the active policies of the principal's scope and hands them to the
// evaluator. Nothing is cached between calls.
type policyChecker struct {
	policyRepo PolicyRepository
	evaluator  policyService.Evaluator
	logger     *slog.Logger
}

// Evaluate returns the decision for the principal and action.
func (c *policyChecker) Evaluate(
	ctx context.Context,
	principal *authDomain.Principal,
	action policyDomain.Action,
) (policyDomain.Decision, error) {
	if principal == nil {
		return policyDomain.Deny(action), nil
	}

	var policies []*policyDomain.Policy
	if scope, ok := policyDomain.ScopeForRole(principal.Role); ok {
		var err error
		policies, err = c.policyRepo.ListActiveByScope(ctx, scope)
		if err != nil {
			return policyDomain.Decision{}, err
		}
	}

	decision := c.evaluator.Evaluate(principal, action, policies)
	if !decision.Allowed {
		c.logger.Info("policy denied action",
			slog.String("action", string(action)),
			slog.String("role", string(principal.Role)),
			slog.String("username", principal.Username),
			slog.String("realm", principal.Realm),
		)
	}

	return decision, nil
}

// Check returns a PolicyDeniedError when the action is not allowed.
func (c *policyChecker) Check(
	ctx context.Context,
	principal *authDomain.Principal,
	action policyDomain.Action,
) error {
	decision, err := c.Evaluate(ctx, principal, action)
	if err != nil {
		return err
	}
	return decision.Err()
}

// NewPolicyChecker creates a PolicyChecker reading from policyRepo.
func NewPolicyChecker(
	policyRepo PolicyRepository,
	evaluator policyService.Evaluator,
	logger *slog.Logger,
) PolicyChecker {
	return &policyChecker{
		policyRepo: policyRepo,
		evaluator:  evaluator,
		logger:     logger,
	}
}
