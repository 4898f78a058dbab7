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

// PaymentHandler holds dependencies for payment settlement handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

// List returns one page of payments.
func (h *PaymentHandler) List(c echo.Context) error {
	snapshot, err := h.uc.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listPayload(snapshot), "")
}

// Get returns a single payment.
func (h *PaymentHandler) Get(c echo.Context) error {
	payment, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "")
}

type paymentStatusInput struct {
	Status entity.PaymentStatus `json:"status" validate:"required"`
}

// SetStatus settles a pending payment.
func (h *PaymentHandler) SetStatus(c echo.Context) error {
	var input paymentStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	payment, err := h.uc.SetStatus(c.Request().Context(), c.Param("id"), input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment settled")
}
