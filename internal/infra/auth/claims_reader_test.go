package auth

import (
	"testing"
	"time"

	"console/internal/domain/entity"
	"console/internal/domain/service"
	"console/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant-secret"))
	require.NoError(t, err)

	return token
}

func TestClaimsReader_ValidToken(t *testing.T) {
	reader := NewClaimsReader()

	exp := time.Now().Add(time.Hour)
	token := signToken(t, jwt.MapClaims{
		"id":    "u1",
		"email": "admin@example.com",
		"role":  "SUPERADMIN",
		"exp":   exp.Unix(),
	})

	claims, err := reader.Read(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, entity.RoleSuperAdmin, claims.Role)
	assert.WithinDuration(t, exp, claims.ExpiresAt, time.Second)
}

func TestClaimsReader_StandardSubjectClaim(t *testing.T) {
	reader := NewClaimsReader()

	token := signToken(t, jwt.MapClaims{
		"sub":  "u2",
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	claims, err := reader.Read(token)
	require.NoError(t, err)
	assert.Equal(t, "u2", claims.Subject)
}

func TestClaimsReader_ExpiredTokenTreatedAsInvalid(t *testing.T) {
	reader := NewClaimsReader()

	// exp 10 seconds in the past must behave exactly like no token.
	token := signToken(t, jwt.MapClaims{
		"id":   "u1",
		"role": "ADMIN",
		"exp":  time.Now().Add(-10 * time.Second).Unix(),
	})

	claims, err := reader.Read(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestClaimsReader_MalformedInput(t *testing.T) {
	reader := NewClaimsReader()

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c", "!!.!!.!!"} {
		claims, err := reader.Read(raw)
		assert.Nil(t, claims, "input %q", raw)
		assert.True(t, errors.Is(err, service.ErrTokenInvalid), "input %q", raw)
	}
}

func TestClaimsReader_MissingOrUnknownRole(t *testing.T) {
	reader := NewClaimsReader()

	token := signToken(t, jwt.MapClaims{
		"id":   "u1",
		"role": "JANITOR",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	claims, err := reader.Read(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestClaimsReader_MissingExp(t *testing.T) {
	reader := NewClaimsReader()

	token := signToken(t, jwt.MapClaims{
		"id":   "u1",
		"role": "ADMIN",
	})

	claims, err := reader.Read(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}
