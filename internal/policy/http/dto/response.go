package dto

import (
	"time"

	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
)

// PolicyResponse is the JSON representation of a policy.
type PolicyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Scope     string    `json:"scope"`
	Action    string    `json:"action"`
	Realm     string    `json:"realm"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapPolicyToResponse converts a domain policy to its response.
func MapPolicyToResponse(policy *policyDomain.Policy) PolicyResponse {
	return PolicyResponse{
		ID:        policy.ID,
		Name:      policy.Name,
		Scope:     string(policy.Scope),
		Action:    policy.Action,
		Realm:     policy.Realm,
		Active:    policy.Active,
		CreatedAt: policy.CreatedAt,
		UpdatedAt: policy.UpdatedAt,
	}
}

// MapPoliciesToResponse converts a slice of policies, never returning nil.
func MapPoliciesToResponse(policies []*policyDomain.Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, MapPolicyToResponse(p))
	}
	return out
}
