// Package http provides HTTP handlers for policy management.
//
// Routes are mounted behind the admin role check; handlers do not consult policies.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/allisson/caconnectors/internal/httputil"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
	"github.com/allisson/caconnectors/internal/policy/http/dto"
	policyUseCase "github.com/allisson/caconnectors/internal/policy/usecase"
	customValidation "github.com/allisson/caconnectors/internal/validation"
)

// PolicyHandler handles HTTP requests for policy management operations.
type PolicyHandler struct {
	policyUseCase policyUseCase.PolicyUseCase
	logger        *slog.Logger
}

// NewPolicyHandler creates a new policy handler with required dependencies.
func NewPolicyHandler(policyUseCase policyUseCase.PolicyUseCase, logger *slog.Logger) *PolicyHandler {
	return &PolicyHandler{
		policyUseCase: policyUseCase,
		logger:        logger,
	}
}

// SetHandler creates or replaces a policy.
// POST /policy/:name - Returns the policy id.
func (h *PolicyHandler) SetHandler(c *gin.Context) {
	var req dto.SetPolicyRequest

	if err := c.ShouldBind(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	policy, err := h.policyUseCase.Set(c.Request.Context(), req.ToInput(c.Param("name")))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.Success(c, policy.ID)
}

// GetHandler retrieves a single policy by name.
// GET /policy/:name
func (h *PolicyHandler) GetHandler(c *gin.Context) {
	policy, err := h.policyUseCase.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.Success(c, dto.MapPolicyToResponse(policy))
}

// ListHandler lists policies.
// GET /policy/?scope=&active=
func (h *PolicyHandler) ListHandler(c *gin.Context) {
	active, err := httputil.ParseOptionalBool(c, "active")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	filter := policyDomain.PolicyFilter{
		Scope:  policyDomain.Scope(c.Query("scope")),
		Active: active,
	}

	policies, err := h.policyUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.Success(c, dto.MapPoliciesToResponse(policies))
}

// DeleteHandler removes a policy by name.
// DELETE /policy/:name - Returns the number of removed policies.
func (h *PolicyHandler) DeleteHandler(c *gin.Context) {
	count, err := h.policyUseCase.Delete(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.Success(c, count)
}
