package handler

import (
	"log/slog"
	"net/http"

	"console/internal/delivery/http/response"
	"console/internal/domain/entity"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeletionHandler holds dependencies for account deletion handlers.
type DeletionHandler struct {
	uc     usecase.DeletionUsecase
	logger *slog.Logger
}

// NewDeletionHandler is the constructor for DeletionHandler, injected by Fx.
func NewDeletionHandler(uc usecase.DeletionUsecase, logger *slog.Logger) *DeletionHandler {
	return &DeletionHandler{uc: uc, logger: logger}
}

// List returns the deletion request queue.
func (h *DeletionHandler) List(c echo.Context) error {
	snapshot, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listPayload(snapshot), "")
}

type deletionDecisionInput struct {
	Action         entity.DeletionAction `json:"action" validate:"required"`
	DecisionReason string                `json:"decisionReason"`
}

// Decide approves or rejects a pending deletion request. Superadmin only.
func (h *DeletionHandler) Decide(c echo.Context) error {
	var input deletionDecisionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	request, err := h.uc.Decide(c.Request().Context(), c.Param("id"), input.Action, input.DecisionReason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Deletion request decided")
}
