package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	apperrors "github.com/allisson/caconnectors/internal/errors"
)

// tokenClaims is the JWT payload. The subject holds the username.
type tokenClaims struct {
	Role  string `json:"role"`
	Realm string `json:"realm,omitempty"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService using HMAC-SHA256 signed JWTs.
type tokenService struct {
	secret     []byte
	issuer     string
	defaultTTL time.Duration
	now        func() time.Time
}

// Issue signs a token for the principal.
func (t *tokenService) Issue(principal *authDomain.Principal, ttl time.Duration) (string, time.Time, error) {
	if principal == nil {
		return "", time.Time{}, apperrors.Wrap(apperrors.ErrInvalidInput, "principal is required")
	}
	if principal.Role == authDomain.RoleAnonymous {
		return "", time.Time{}, apperrors.Wrap(apperrors.ErrInvalidInput, "cannot issue a token for anonymous")
	}
	if ttl <= 0 {
		ttl = t.defaultTTL
	}

	now := t.now().UTC()
	expiresAt := now.Add(ttl)
	claims := tokenClaims{
		Role:  string(principal.Role),
		Realm: principal.Realm,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   principal.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a token.
func (t *tokenService) Verify(token string) (*authDomain.Principal, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(*jwt.Token) (any, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "token expired")
		}
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, err.Error())
	}

	role, err := authDomain.ParseRole(claims.Role)
	if err != nil || role == authDomain.RoleAnonymous {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "token carries an invalid role")
	}

	return &authDomain.Principal{
		Role:     role,
		Username: claims.Subject,
		Realm:    claims.Realm,
	}, nil
}

// NewTokenService creates a TokenService signing with secret. Tokens name issuer and
// default to defaultTTL when issued without an explicit lifetime.
func NewTokenService(secret []byte, issuer string, defaultTTL time.Duration) TokenService {
	return &tokenService{
		secret:     secret,
		issuer:     issuer,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}
