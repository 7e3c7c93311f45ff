package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	authService "github.com/allisson/caconnectors/internal/auth/service"
	"github.com/allisson/caconnectors/internal/httputil"
)

// AuthenticationMiddleware resolves the request principal from the Authorization header.
//
// The header may hold "Bearer <token>" (case-insensitive) or the bare token. A request
// without the header continues as the anonymous principal so that gated operations
// report the missing role. A header that does not verify is rejected with 401.
//
// Usage:
//
//	router.Use(AuthenticationMiddleware(tokenService, logger))
//	router.GET("/caconnector/", func(c *gin.Context) {
//	    principal := PrincipalOrAnonymous(c.Request.Context())
//	    // hand principal to the access gate
//	})
func AuthenticationMiddleware(tokenService authService.TokenService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), authDomain.Anonymous()))
			c.Next()
			return
		}

		const bearerPrefix = "bearer "
		token := authHeader
		if len(authHeader) >= len(bearerPrefix) && strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			token = strings.TrimSpace(authHeader[len(bearerPrefix):])
		}

		principal, err := tokenService.Verify(token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))

		logger.Debug("authentication successful",
			slog.String("role", string(principal.Role)),
			slog.String("username", principal.Username),
			slog.String("realm", principal.Realm))

		c.Next()
	}
}

// RequireRoleMiddleware rejects requests whose principal holds none of the allowed roles.
// It must run after AuthenticationMiddleware. Routes whose role check lives in the access
// gate do not use it.
func RequireRoleMiddleware(logger *slog.Logger, allowed ...authDomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalOrAnonymous(c.Request.Context())
		if err := authDomain.RequireRole(principal, allowed...); err != nil {
			logger.Debug("role check failed",
				slog.String("role", string(principal.Role)),
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}
		c.Next()
	}
}
