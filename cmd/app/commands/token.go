package commands

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	authService "github.com/allisson/caconnectors/internal/auth/service"
)

// RunIssueToken signs a bearer token for a principal. A zero ttl uses the configured
// default lifetime.
func RunIssueToken(
	tokenService authService.TokenService,
	logger *slog.Logger,
	w io.Writer,
	role, username, realm string,
	ttl time.Duration,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	parsed, err := authDomain.ParseRole(role)
	if err != nil {
		return err
	}
	if ttl < 0 {
		return fmt.Errorf("ttl must not be negative, got: %s", ttl)
	}

	principal := &authDomain.Principal{Role: parsed, Username: username, Realm: realm}
	token, expiresAt, err := tokenService.Issue(principal, ttl)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("token issued",
		slog.String("role", string(parsed)),
		slog.String("username", username),
		slog.String("realm", realm),
		slog.Time("expires_at", expiresAt),
	)

	if format == "json" {
		return writeJSON(w, map[string]any{
			"token":      token,
			"expires_at": expiresAt.UTC().Format(time.RFC3339),
		})
	}
	_, err = fmt.Fprintln(w, token)
	return err
}
