// Package dto provides data transfer objects for policy HTTP requests and responses.
package dto

import (
	validation "github.com/jellydator/validation"

	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
	customValidation "github.com/allisson/caconnectors/internal/validation"
)

// SetPolicyRequest contains the parameters for creating or replacing a policy.
// It binds from JSON and from form data.
type SetPolicyRequest struct {
	Scope  string `json:"scope"  form:"scope"`
	Action string `json:"action" form:"action"`
	Realm  string `json:"realm"  form:"realm"`
	Active *bool  `json:"active" form:"active"`
}

// Validate checks if the request is valid.
func (r *SetPolicyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Scope, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Action, validation.Required, customValidation.NotBlank),
	)
}

// ToInput maps the request to the domain input. A missing active flag means active.
func (r *SetPolicyRequest) ToInput(name string) *policyDomain.SetPolicyInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &policyDomain.SetPolicyInput{
		Name:   name,
		Scope:  policyDomain.Scope(r.Scope),
		Action: r.Action,
		Realm:  r.Realm,
		Active: active,
	}
}
