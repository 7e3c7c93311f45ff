// Package dto provides data transfer objects for CA connector HTTP requests and responses.
package dto

import (
	"fmt"
	"maps"
	"strconv"

	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
)

// TypeParam is the request parameter selecting the connector type. Every other
// parameter is stored as connector data.
const TypeParam = "type"

// SaveConnectorRequest holds the flat parameters of a save request.
type SaveConnectorRequest struct {
	Type string
	Data map[string]string
}

// NewSaveConnectorRequest splits flat parameters into the type and the data mapping.
func NewSaveConnectorRequest(params map[string]string) *SaveConnectorRequest {
	data := maps.Clone(params)
	if data == nil {
		data = map[string]string{}
	}
	typeID := data[TypeParam]
	delete(data, TypeParam)
	return &SaveConnectorRequest{Type: typeID, Data: data}
}

// ParamsFromJSON converts a decoded JSON object into flat string parameters. Strings,
// numbers and booleans are accepted; nested values are rejected.
func ParamsFromJSON(body map[string]any) (map[string]string, error) {
	params := make(map[string]string, len(body))
	for key, raw := range body {
		switch v := raw.(type) {
		case string:
			params[key] = v
		case float64:
			params[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			params[key] = strconv.FormatBool(v)
		default:
			return nil, fmt.Errorf("parameter %q must be a string", key)
		}
	}
	return params, nil
}

// ParamsFromForm takes the first value of every form field.
func ParamsFromForm(form map[string][]string) map[string]string {
	params := make(map[string]string, len(form))
	for key, values := range form {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

// ToInput maps the request to the domain input.
func (r *SaveConnectorRequest) ToInput(name string) *caDomain.SaveConnectorInput {
	return &caDomain.SaveConnectorInput{
		Name: name,
		Type: r.Type,
		Data: r.Data,
	}
}
