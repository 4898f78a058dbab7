package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"console/config"
	"console/internal/delivery/http/middleware"
	"console/internal/delivery/http/validator"
	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/service"
	"console/internal/errors"
	"console/internal/usecase"
)

type stubSessionUsecase struct {
	session  service.Session
	loginErr error
	loggedIn bool
}

func (s *stubSessionUsecase) Login(_ context.Context, _, _ string) (service.Session, error) {
	if s.loginErr != nil {
		return service.Session{}, s.loginErr
	}
	s.loggedIn = true

	return s.session, nil
}

func (s *stubSessionUsecase) Logout(_ context.Context) { s.loggedIn = false }

func (s *stubSessionUsecase) Current(_ context.Context) service.Session {
	if !s.loggedIn {
		return service.Session{State: service.SessionAnonymous}
	}

	return s.session
}

type stubAccountUsecase struct {
	created bool
	err     error
}

func (s *stubAccountUsecase) CreateAdmin(_ context.Context, _ usecase.AdminSignupInput) error {
	if s.err != nil {
		return s.err
	}
	s.created = true

	return nil
}

func adminSession() service.Session {
	return service.Session{
		State: service.SessionAuthenticated,
		Token: "jwt-token",
		Claims: &service.Claims{
			Subject:   "admin-1",
			Email:     "ops@example.com",
			Role:      entity.RoleAdmin,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

func newAuthHandler(sessions usecase.SessionUsecase, accounts usecase.AccountUsecase) *AuthHandler {
	cfg := &config.Config{}
	cfg.Session.CookieName = "token"
	cookies := middleware.NewSessionMiddleware(nil, cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthHandler(sessions, accounts, cookies, logger)
}

func postJSON(t *testing.T, h echo.HandlerFunc, path, payload string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h(e.NewContext(req, rec)))

	return rec
}

func TestAuthHandler_LoginSetsSessionCookie(t *testing.T) {
	t.Parallel()

	sessions := &stubSessionUsecase{session: adminSession()}
	h := newAuthHandler(sessions, &stubAccountUsecase{})

	rec := postJSON(t, h.Login, "/auth/login",
		`{"email":"ops@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, "jwt-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	var body struct {
		Data struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ops@example.com", body.Data.Email)
	assert.Equal(t, "ADMIN", body.Data.Role)
}

func TestAuthHandler_LoginFailurePropagates(t *testing.T) {
	t.Parallel()

	sessions := &stubSessionUsecase{
		loginErr: domainerrors.NewUpstreamError(http.StatusUnauthorized, "Invalid credentials"),
	}
	h := newAuthHandler(sessions, &stubAccountUsecase{})

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ops@example.com","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	t.Parallel()

	sessions := &stubSessionUsecase{session: adminSession(), loggedIn: true}
	h := newAuthHandler(sessions, &stubAccountUsecase{})

	rec := postJSON(t, h.Logout, "/auth/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sessions.loggedIn)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_SignupPasswordMismatch(t *testing.T) {
	t.Parallel()

	accounts := &stubAccountUsecase{err: errors.WithStack(domainerrors.ErrPasswordMismatch)}
	h := newAuthHandler(&stubSessionUsecase{}, accounts)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/signup", strings.NewReader(
		`{"firstName":"Ada","lastName":"Ops","email":"ada@example.com","password":"s3cret-one","confirmPassword":"s3cret-two"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Signup(e.NewContext(req, rec))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
	assert.False(t, accounts.created)
}

func TestAuthHandler_SessionReportsAnonymous(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(&stubSessionUsecase{}, &stubAccountUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Session(e.NewContext(req, rec)))

	var body struct {
		Data struct {
			Authenticated bool `json:"authenticated"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Data.Authenticated)
}
