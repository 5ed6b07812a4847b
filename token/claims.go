package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Claims is what the client can read from its own bearer token. The
// signature is NOT checked: the client never holds the server's key, so
// these values are for display only.
type Claims struct {
	Subject   string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
}

// Inspect decodes a JWT without verifying it.
func Inspect(raw string) (*Claims, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("[Inspect] empty token")
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "[Inspect] not a JWT")
	}

	claims := &Claims{}
	if claims.Subject, err = parsed.Claims.GetSubject(); err != nil {
		return nil, errors.Wrap(err, "[Inspect] sub")
	}
	iat, err := parsed.Claims.GetIssuedAt()
	if err != nil {
		return nil, errors.Wrap(err, "[Inspect] iat")
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "[Inspect] exp")
	}
	if iat != nil {
		t := iat.Time
		claims.IssuedAt = &t
	}
	if exp != nil {
		t := exp.Time
		claims.ExpiresAt = &t
	}
	return claims, nil
}

// Expired reports whether the token carries an expiry that is not after now.
// A token without "exp" never expires.
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}
