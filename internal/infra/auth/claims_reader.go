// Package auth provides the unverified bearer-token claims decoder.
package auth

import (
	"time"

	"console/internal/domain/entity"
	"console/internal/domain/service"
	"console/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// claimsReader decodes token claims without signature verification. The
// claims gate UI visibility only; every forwarded request is re-authorized
// by the backend, so a forged token buys nothing but a misleading screen.
type claimsReader struct{}

// NewClaimsReader is the constructor for claimsReader.
func NewClaimsReader() service.TokenReader {
	return &claimsReader{}
}

// Read decodes the claims of a bearer token. Malformed or expired tokens
// return service.ErrTokenInvalid; decoding failure is a normal outcome
// here, never a panic.
func (r *claimsReader) Read(token string) (*service.Claims, error) {
	if token == "" {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, "missing exp claim")
	}
	if exp.Before(time.Now()) {
		return nil, errors.Wrap(service.ErrTokenInvalid, "token expired")
	}

	subject, _ := claims["id"].(string)
	if subject == "" {
		// Some backend builds issue the subject under the standard claim.
		subject, _ = claims["sub"].(string)
	}
	if subject == "" {
		return nil, errors.Wrap(service.ErrTokenInvalid, "missing subject claim")
	}

	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return nil, errors.Wrap(service.ErrTokenInvalid, "unknown role claim")
	}

	return &service.Claims{
		Subject:   subject,
		Email:     email,
		Role:      role,
		ExpiresAt: exp.Time,
	}, nil
}
