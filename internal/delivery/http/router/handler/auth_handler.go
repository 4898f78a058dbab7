package handler

import (
	"log/slog"
	"net/http"

	"console/internal/delivery/http/middleware"
	"console/internal/delivery/http/response"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session and account handlers.
type AuthHandler struct {
	sessions usecase.SessionUsecase
	accounts usecase.AccountUsecase
	cookies  *middleware.SessionMiddleware
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	sessions usecase.SessionUsecase,
	accounts usecase.AccountUsecase,
	cookies *middleware.SessionMiddleware,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		accounts: accounts,
		cookies:  cookies,
		logger:   logger,
	}
}

// LoginInput is the login request payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionData struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

// Login handles the operator login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.sessions.Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetSessionCookie(c, session.Token, session.Claims.ExpiresAt)

	return response.Success(c, http.StatusOK, sessionData{
		Subject: session.Claims.Subject,
		Email:   session.Claims.Email,
		Role:    session.Claims.Role.String(),
	}, "Login successful")
}

// Logout handles the operator logout request.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	h.cookies.ClearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Session reports the current session's claims, if any.
func (h *AuthHandler) Session(c echo.Context) error {
	session := h.sessions.Current(c.Request().Context())
	if session.Claims == nil {
		return response.Success(c, http.StatusOK, map[string]bool{"authenticated": false}, "")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"authenticated": true,
		"session": sessionData{
			Subject: session.Claims.Subject,
			Email:   session.Claims.Email,
			Role:    session.Claims.Role.String(),
		},
	}, "")
}

// Signup creates a new admin account. Superadmin only.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.AdminSignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.accounts.CreateAdmin(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Admin account created")
}
