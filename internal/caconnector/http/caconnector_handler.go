// Package http provides HTTP handlers for CA connector management.
//
// Every handler forwards the request principal to the access gate, which owns the role and
// policy checks. The save handler also checks the role before reading the body.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	authHttp "github.com/allisson/caconnectors/internal/auth/http"
	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	"github.com/allisson/caconnectors/internal/caconnector/http/dto"
	caUseCase "github.com/allisson/caconnectors/internal/caconnector/usecase"
	"github.com/allisson/caconnectors/internal/httputil"
)

// ConnectorHandler handles HTTP requests for CA connector operations.
type ConnectorHandler struct {
	gate   caUseCase.AccessGate
	logger *slog.Logger
}

// NewConnectorHandler creates a new CA connector handler with required dependencies.
func NewConnectorHandler(gate caUseCase.AccessGate, logger *slog.Logger) *ConnectorHandler {
	return &ConnectorHandler{
		gate:   gate,
		logger: logger,
	}
}

// SaveHandler creates or updates a connector from flat parameters. The "type" parameter
// selects the connector type; every other parameter is stored as data.
// The role is checked before the body is read.
// POST /caconnector/:name - Returns the connector id.
func (h *ConnectorHandler) SaveHandler(c *gin.Context) {
	principal := authHttp.PrincipalOrAnonymous(c.Request.Context())
	if err := authDomain.RequireRole(principal, authDomain.RoleAdmin); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	params, err := h.bindParams(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	req := dto.NewSaveConnectorRequest(params)
	id, err := h.gate.Save(c.Request.Context(), principal, req.ToInput(c.Param("name")))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.Success(c, id)
}

// ListHandler lists connectors, optionally narrowed by name and type.
// GET /caconnector/ and GET /caconnector/:name, both accepting ?type=
func (h *ConnectorHandler) ListHandler(c *gin.Context) {
	filter := caDomain.ListFilter{
		Name: c.Param("name"),
		Type: c.Query("type"),
	}

	principal := authHttp.PrincipalOrAnonymous(c.Request.Context())
	connectors, err := h.gate.List(c.Request.Context(), principal, filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.Success(c, dto.MapConnectorsToResponse(connectors))
}

// DeleteHandler removes a connector by name.
// DELETE /caconnector/:name - Returns 1 when removed, 0 when absent.
func (h *ConnectorHandler) DeleteHandler(c *gin.Context) {
	principal := authHttp.PrincipalOrAnonymous(c.Request.Context())
	count, err := h.gate.Delete(c.Request.Context(), principal, c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.Success(c, count)
}

// DescribeTypeHandler returns the option descriptions of a connector type.
// GET /caconnector/specific/:type
func (h *ConnectorHandler) DescribeTypeHandler(c *gin.Context) {
	principal := authHttp.PrincipalOrAnonymous(c.Request.Context())
	options, err := h.gate.DescribeType(c.Request.Context(), principal, c.Param("type"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.Success(c, options)
}

func (h *ConnectorHandler) bindParams(c *gin.Context) (map[string]string, error) {
	if c.ContentType() == gin.MIMEJSON {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, err
		}
		return dto.ParamsFromJSON(body)
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return dto.ParamsFromForm(c.Request.PostForm), nil
}
