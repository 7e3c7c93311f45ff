package domain

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/caconnectors/internal/validation"
)

var policyNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`)

// Policy grants actions to principals of one scope, optionally restricted to a realm.
type Policy struct {
	ID     int64
	Name   string
	Scope  Scope
	Action string // "action" or "a1, a2=value"
	Realm  string // empty matches every realm
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actions parses the action field into a set of action names with their optional values.
// Entries without a value map to "true".
func (p *Policy) Actions() map[Action]string {
	actions := make(map[Action]string)
	for _, entry := range strings.Split(p.Action, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, value, found := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !found {
			value = "true"
		}
		actions[Action(name)] = strings.TrimSpace(value)
	}
	return actions
}

// Grants reports whether the policy names the given action.
func (p *Policy) Grants(action Action) bool {
	_, ok := p.Actions()[action]
	return ok
}

// AppliesToRealm reports whether the policy covers the given realm.
// Realm names are compared case-insensitively.
func (p *Policy) AppliesToRealm(realm string) bool {
	return p.Realm == "" || strings.EqualFold(p.Realm, realm)
}

// SetPolicyInput contains the fields used to create or replace a policy by name.
type SetPolicyInput struct {
	Name   string
	Scope  Scope
	Action string
	Realm  string
	Active bool
}

// Validate checks the policy input before it reaches the store.
func (i *SetPolicyInput) Validate() error {
	scopes := make([]any, 0, len(Scopes))
	for _, s := range Scopes {
		scopes = append(scopes, s)
	}

	return validation.ValidateStruct(i,
		validation.Field(&i.Name,
			validation.Required,
			validation.Length(1, 64),
			validation.Match(policyNameRegex),
		),
		validation.Field(&i.Scope, validation.Required, validation.In(scopes...)),
		validation.Field(&i.Action,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 2000),
		),
		validation.Field(&i.Realm, customValidation.NoWhitespace, validation.Length(0, 256)),
	)
}

// PolicyFilter narrows a policy listing. Zero values do not filter.
type PolicyFilter struct {
	Name   string
	Scope  Scope
	Active *bool
}
