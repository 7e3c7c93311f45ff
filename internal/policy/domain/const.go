// Package domain defines policies, scopes, actions and authorization decisions.
package domain

import (
	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
)

// Scope is the principal class a policy applies to.
type Scope string

const (
	ScopeAdmin          Scope = "admin"
	ScopeUser           Scope = "user"
	ScopeAuthentication Scope = "authentication"
	ScopeAuthorization  Scope = "authorization"
	ScopeEnrollment     Scope = "enrollment"
	ScopeWebUI          Scope = "webui"
)

// Scopes lists every scope a policy may be stored under.
var Scopes = []Scope{
	ScopeAdmin,
	ScopeUser,
	ScopeAuthentication,
	ScopeAuthorization,
	ScopeEnrollment,
	ScopeWebUI,
}

// Action names a capability a policy can grant.
type Action string

const (
	// ActionAudit allows reading the audit trail.
	ActionAudit Action = "auditlog"

	// ActionCAConnectorRead allows listing CA connectors and describing connector types.
	ActionCAConnectorRead Action = "caconnectorread"

	// ActionCAConnectorWrite allows creating and updating CA connectors.
	ActionCAConnectorWrite Action = "caconnectorwrite"
)

// ScopeForRole returns the policy scope implied by a structural role.
// Roles without a policy scope (anonymous) report false.
func ScopeForRole(role authDomain.Role) (Scope, bool) {
	switch role {
	case authDomain.RoleAdmin:
		return ScopeAdmin, true
	case authDomain.RoleUser:
		return ScopeUser, true
	default:
		return "", false
	}
}
