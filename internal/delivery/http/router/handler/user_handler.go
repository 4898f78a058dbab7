package handler

import (
	"log/slog"
	"net/http"

	"console/internal/delivery/http/response"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for customer account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// List returns one page of users.
func (h *UserHandler) List(c echo.Context) error {
	snapshot, err := h.uc.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listPayload(snapshot), "")
}

// Get returns a single user.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// Suspend suspends the user's account.
func (h *UserHandler) Suspend(c echo.Context) error {
	user, err := h.uc.Suspend(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User suspended")
}

// Activate reactivates the user's account.
func (h *UserHandler) Activate(c echo.Context) error {
	user, err := h.uc.Activate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User activated")
}

// reasonInput carries a free-text reason for an action.
type reasonInput struct {
	Reason string `json:"reason"`
}

// RequestDeletion files a deletion request for the user's account.
func (h *UserHandler) RequestDeletion(c echo.Context) error {
	var input reasonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deletion input")
	}

	request, err := h.uc.RequestDeletion(c.Request().Context(), c.Param("id"), input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, request, "Deletion requested")
}
