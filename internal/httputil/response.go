// Package httputil provides HTTP utility functions for request and response handling.
//
// Every response is wrapped in a result envelope:
//
//	{"result": {"status": true, "value": ...}}
//	{"result": {"status": false, "error": {"code": 303, "message": "..."}}}
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/caconnectors/internal/errors"
)

// Error codes carried in failed envelopes.
const (
	CodePolicy                   = 303
	CodeResourceNotFound         = 601
	CodeConflict                 = 609
	CodeInternal                 = 903
	CodeParameter                = 905
	CodeAuthenticateBadToken     = 4033
	CodeAuthenticateMissingRight = 4306
	CodeRateLimited              = 4290
)

// Envelope is the outer object of every JSON response.
type Envelope struct {
	Result any `json:"result"`
}

// SuccessResult is the result of a successful request. Value is always present.
type SuccessResult struct {
	Status bool `json:"status"`
	Value  any  `json:"value"`
}

// ErrorBody describes a failure.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ErrorResult is the result of a failed request.
type ErrorResult struct {
	Status bool      `json:"status"`
	Error  ErrorBody `json:"error"`
}

// Success writes a 200 OK envelope carrying value.
func Success(c *gin.Context, value any) {
	c.JSON(http.StatusOK, Envelope{Result: SuccessResult{Status: true, Value: value}})
}

// Failure writes a failed envelope with the given status and code.
func Failure(c *gin.Context, statusCode, code int, message string) {
	c.JSON(statusCode, Envelope{Result: ErrorResult{
		Error: ErrorBody{Code: code, Message: message},
	}})
}

// AbortWithFailure writes a failed envelope and stops the handler chain.
func AbortWithFailure(c *gin.Context, statusCode, code int, message string) {
	c.AbortWithStatusJSON(statusCode, Envelope{Result: ErrorResult{
		Error: ErrorBody{Code: code, Message: message},
	}})
}

// MapError translates a domain error into a status code, an error code and the message
// exposed to the caller. Internal errors never expose their details.
func MapError(err error) (statusCode, code int, message string) {
	switch apperrors.Kind(err) {
	case apperrors.ErrInsufficientRole:
		return http.StatusUnauthorized, CodeAuthenticateMissingRight, err.Error()
	case apperrors.ErrUnauthorized:
		return http.StatusUnauthorized, CodeAuthenticateBadToken, "Authentication failure. Missing or invalid authorization token"
	case apperrors.ErrForbidden:
		return http.StatusForbidden, CodePolicy, err.Error()
	case apperrors.ErrInvalidInput:
		return http.StatusUnprocessableEntity, CodeParameter, err.Error()
	case apperrors.ErrNotFound:
		return http.StatusNotFound, CodeResourceNotFound, err.Error()
	case apperrors.ErrConflict:
		return http.StatusConflict, CodeConflict, err.Error()
	default:
		return http.StatusInternalServerError, CodeInternal, "An internal error occurred"
	}
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a failed envelope.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, code, message := MapError(err)

	// Log the full error details (including wrapped errors)
	if logger != nil {
		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.Int("error_code", code),
			slog.Any("error", err),
		)
	}

	Failure(c, statusCode, code, message)
}

// HandleBadRequestGin writes a 400 Bad Request envelope for malformed bodies or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	Failure(c, http.StatusBadRequest, CodeParameter, err.Error())
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity envelope for validation errors.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	Failure(c, http.StatusUnprocessableEntity, CodeParameter, err.Error())
}
