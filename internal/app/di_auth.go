package app

import (
	"errors"

	authService "github.com/allisson/caconnectors/internal/auth/service"
)

// TokenService returns the bearer token service. Fails when no signing secret is configured.
func (c *Container) TokenService() (authService.TokenService, error) {
	return c.tokenService.get(func() (authService.TokenService, error) {
		if c.config.AuthTokenSecret == "" {
			return nil, errors.New("AUTH_TOKEN_SECRET is not configured")
		}
		return authService.NewTokenService(
			[]byte(c.config.AuthTokenSecret),
			c.config.AuthTokenIssuer,
			c.config.AuthTokenExpiration,
		), nil
	})
}
