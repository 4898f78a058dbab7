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

// WithdrawalHandler holds dependencies for payout decision handlers.
type WithdrawalHandler struct {
	uc     usecase.WithdrawalUsecase
	logger *slog.Logger
}

// NewWithdrawalHandler is the constructor for WithdrawalHandler, injected by Fx.
func NewWithdrawalHandler(uc usecase.WithdrawalUsecase, logger *slog.Logger) *WithdrawalHandler {
	return &WithdrawalHandler{uc: uc, logger: logger}
}

// List returns one page of withdrawal requests.
func (h *WithdrawalHandler) List(c echo.Context) error {
	snapshot, err := h.uc.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listPayload(snapshot), "")
}

type withdrawalDecisionInput struct {
	Status entity.ApprovalStatus `json:"status" validate:"required"`
}

// Decide approves or rejects a pending withdrawal request.
func (h *WithdrawalHandler) Decide(c echo.Context) error {
	var input withdrawalDecisionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	withdrawal, err := h.uc.Decide(c.Request().Context(), c.Param("id"), input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, withdrawal, "Withdrawal decided")
}
