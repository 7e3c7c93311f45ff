// Package domain defines CA connector configurations and their listing model.
package domain

import (
	"maps"
	"regexp"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/caconnectors/internal/validation"
)

var connectorNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`)

// CAConnector is a named, typed configuration for a certificate authority backend.
// The ID is assigned on creation and stays the same across updates.
type CAConnector struct {
	ID   int64
	Name string
	Type string
	Data map[string]string
}

// Masked returns a copy with the configuration data removed.
func (c *CAConnector) Masked() *CAConnector {
	return &CAConnector{
		ID:   c.ID,
		Name: c.Name,
		Type: c.Type,
		Data: map[string]string{},
	}
}

// MergeData returns the stored data overlaid with update. Keys missing from update are kept.
func MergeData(stored, update map[string]string) map[string]string {
	merged := make(map[string]string, len(stored)+len(update))
	maps.Copy(merged, stored)
	maps.Copy(merged, update)
	return merged
}

// SaveConnectorInput contains the fields used to create or update a connector.
type SaveConnectorInput struct {
	Name string
	Type string
	Data map[string]string
}

// Validate checks the fields that do not depend on the connector type.
func (i *SaveConnectorInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
			validation.Match(connectorNameRegex),
		),
		validation.Field(&i.Type,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// ListFilter narrows a connector listing. Empty fields do not filter.
type ListFilter struct {
	Name string
	Type string
}

// OptionDescription describes one configuration key of a connector type.
type OptionDescription struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
}
