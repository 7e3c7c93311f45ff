package dto

import (
	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
)

// ConnectorResponse represents a CA connector descriptor in API responses.
type ConnectorResponse struct {
	ID            int64             `json:"id"`
	ConnectorName string            `json:"connectorname"`
	Type          string            `json:"type"`
	Data          map[string]string `json:"data"`
}

// MapConnectorToResponse converts a domain connector to an API response.
func MapConnectorToResponse(connector *caDomain.CAConnector) ConnectorResponse {
	data := connector.Data
	if data == nil {
		data = map[string]string{}
	}
	return ConnectorResponse{
		ID:            connector.ID,
		ConnectorName: connector.Name,
		Type:          connector.Type,
		Data:          data,
	}
}

// MapConnectorsToResponse converts a list of connectors, never returning nil.
func MapConnectorsToResponse(connectors []*caDomain.CAConnector) []ConnectorResponse {
	response := make([]ConnectorResponse, 0, len(connectors))
	for _, connector := range connectors {
		response = append(response, MapConnectorToResponse(connector))
	}
	return response
}
