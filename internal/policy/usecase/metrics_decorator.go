package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	"github.com/allisson/caconnectors/internal/metrics"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
)

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// policyUseCaseWithMetrics decorates PolicyUseCase with metrics instrumentation.
type policyUseCaseWithMetrics struct {
	next    PolicyUseCase
	metrics metrics.BusinessMetrics
}

// NewPolicyUseCaseWithMetrics wraps a PolicyUseCase with metrics recording.
func NewPolicyUseCaseWithMetrics(useCase PolicyUseCase, m metrics.BusinessMetrics) PolicyUseCase {
	return &policyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *policyUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := statusOf(err)
	p.metrics.RecordOperation(ctx, "policy", operation, status)
	p.metrics.RecordDuration(ctx, "policy", operation, time.Since(start), status)
}

// Set records metrics for policy set operations.
func (p *policyUseCaseWithMetrics) Set(
	ctx context.Context,
	input *policyDomain.SetPolicyInput,
) (*policyDomain.Policy, error) {
	start := time.Now()
	policy, err := p.next.Set(ctx, input)
	p.record(ctx, "policy_set", start, err)
	return policy, err
}

// Get records metrics for policy retrieval operations.
func (p *policyUseCaseWithMetrics) Get(ctx context.Context, name string) (*policyDomain.Policy, error) {
	start := time.Now()
	policy, err := p.next.Get(ctx, name)
	p.record(ctx, "policy_get", start, err)
	return policy, err
}

// List records metrics for policy list operations.
func (p *policyUseCaseWithMetrics) List(
	ctx context.Context,
	filter policyDomain.PolicyFilter,
) ([]*policyDomain.Policy, error) {
	start := time.Now()
	policies, err := p.next.List(ctx, filter)
	p.record(ctx, "policy_list", start, err)
	return policies, err
}

// Delete records metrics for policy delete operations.
func (p *policyUseCaseWithMetrics) Delete(ctx context.Context, name string) (int64, error) {
	start := time.Now()
	count, err := p.next.Delete(ctx, name)
	p.record(ctx, "policy_delete", start, err)
	return count, err
}

// policyCheckerWithMetrics counts decisions by outcome.
type policyCheckerWithMetrics struct {
	next    PolicyChecker
	metrics metrics.BusinessMetrics
}

// NewPolicyCheckerWithMetrics wraps a PolicyChecker with metrics recording. Decisions are
// recorded with status "allow", "deny" or "error".
func NewPolicyCheckerWithMetrics(checker PolicyChecker, m metrics.BusinessMetrics) PolicyChecker {
	return &policyCheckerWithMetrics{
		next:    checker,
		metrics: m,
	}
}

// Evaluate records the decision outcome.
func (c *policyCheckerWithMetrics) Evaluate(
	ctx context.Context,
	principal *authDomain.Principal,
	action policyDomain.Action,
) (policyDomain.Decision, error) {
	start := time.Now()
	decision, err := c.next.Evaluate(ctx, principal, action)

	status := "allow"
	switch {
	case err != nil:
		status = "error"
	case !decision.Allowed:
		status = "deny"
	}

	c.metrics.RecordOperation(ctx, "policy", "evaluate", status)
	c.metrics.RecordDuration(ctx, "policy", "evaluate", time.Since(start), status)

	return decision, err
}

// Check evaluates through the instrumented path.
func (c *policyCheckerWithMetrics) Check(
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
