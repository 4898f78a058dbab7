// Package service declares the domain service contracts implemented under
// internal/infra.
package service

import (
	"time"

	"console/internal/domain/entity"
	"console/internal/errors"
)

// ErrTokenInvalid is returned for a structurally malformed or expired
// token. Both cases are normal outcomes and are treated as "no session".
var ErrTokenInvalid = errors.New("token is invalid or expired")

// Claims is the decoded payload of a bearer token. It is display-only
// gating information, never a security boundary; the backend enforces the
// real authorization on every forwarded request.
type Claims struct {
	Subject   string
	Email     string
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenReader decodes a bearer token's claims without contacting a server
// and without verifying its signature.
type TokenReader interface {
	// Read returns the claims, or ErrTokenInvalid for malformed or
	// expired input. It never panics on hostile input.
	Read(token string) (*Claims, error)
}
