// Package usecase defines business logic interfaces for policy management and evaluation.
package usecase

import (
	"context"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
)

// PolicyRepository defines persistence operations for policies.
// Implementations must support transaction-aware operations via context propagation.
type PolicyRepository interface {
	// Upsert creates the policy or replaces the policy with the same name.
	// The stored ID and CreatedAt are written back into the policy.
	Upsert(ctx context.Context, policy *policyDomain.Policy) error

	// Get retrieves a policy by name. Returns ErrPolicyNotFound if not found.
	Get(ctx context.Context, name string) (*policyDomain.Policy, error)

	// List returns policies matching the filter ordered by ID.
	List(ctx context.Context, filter policyDomain.PolicyFilter) ([]*policyDomain.Policy, error)

	// ListActiveByScope returns the active policies of one scope ordered by ID.
	ListActiveByScope(ctx context.Context, scope policyDomain.Scope) ([]*policyDomain.Policy, error)

	// Delete removes the policy with the given name and returns the number of removed rows.
	Delete(ctx context.Context, name string) (int64, error)
}

// PolicyUseCase manages the policy set. It performs no role checks; callers that act on
// behalf of a principal enforce the admin role before reaching it.
type PolicyUseCase interface {
	// Set validates the input and creates or replaces the policy with the same name.
	Set(ctx context.Context, input *policyDomain.SetPolicyInput) (*policyDomain.Policy, error)

	// Get retrieves a policy by name. Returns ErrPolicyNotFound if not found.
	Get(ctx context.Context, name string) (*policyDomain.Policy, error)

	// List returns policies matching the filter.
	List(ctx context.Context, filter policyDomain.PolicyFilter) ([]*policyDomain.Policy, error)

	// Delete removes a policy by name. Returns ErrPolicyNotFound if it did not exist.
	Delete(ctx context.Context, name string) (int64, error)
}

// PolicyChecker answers authorization questions against the current policy set.
// Every call reads the policy set again so changes apply to the next request.
type PolicyChecker interface {
	// Evaluate returns the decision for the principal and action.
	Evaluate(
		ctx context.Context,
		principal *authDomain.Principal,
		action policyDomain.Action,
	) (policyDomain.Decision, error)

	// Check returns a PolicyDeniedError when the action is not allowed.
	Check(ctx context.Context, principal *authDomain.Principal, action policyDomain.Action) error
}
