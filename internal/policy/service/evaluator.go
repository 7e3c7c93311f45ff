// Package service implements the policy decision function.
//
// Evaluation follows an allow-until-configured model: a principal whose scope has no
// active policy for its realm may perform any action. As soon as one such policy exists,
// only actions explicitly named by a matching policy are allowed. Policies of other
// scopes never take part in a decision.
package service

import (
	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
)

// Evaluator decides whether a principal may perform an action given a policy snapshot.
type Evaluator interface {
	Evaluate(
		principal *authDomain.Principal,
		action policyDomain.Action,
		policies []*policyDomain.Policy,
	) policyDomain.Decision
}

type evaluator struct{}

// NewEvaluator returns the default Evaluator.
func NewEvaluator() Evaluator {
	return evaluator{}
}

// Evaluate applies the decision rule over the supplied snapshot. The snapshot may contain
// policies of any scope and activity; selection happens here.
func (evaluator) Evaluate(
	principal *authDomain.Principal,
	action policyDomain.Action,
	policies []*policyDomain.Policy,
) policyDomain.Decision {
	if principal == nil {
		return policyDomain.Deny(action)
	}
	scope, ok := policyDomain.ScopeForRole(principal.Role)
	if !ok {
		return policyDomain.Deny(action)
	}

	selected := Select(policies, scope, principal.Realm)
	if len(selected) == 0 {
		return policyDomain.Allow(action)
	}

	for _, p := range selected {
		if p.Grants(action) {
			return policyDomain.Allow(action)
		}
	}

	return policyDomain.Deny(action)
}

// Select returns the active policies of a scope that apply to the realm.
func Select(policies []*policyDomain.Policy, scope policyDomain.Scope, realm string) []*policyDomain.Policy {
	var selected []*policyDomain.Policy
	for _, p := range policies {
		if p == nil || !p.Active || p.Scope != scope {
			continue
		}
		if !p.AppliesToRealm(realm) {
			continue
		}
		selected = append(selected, p)
	}
	return selected
}
