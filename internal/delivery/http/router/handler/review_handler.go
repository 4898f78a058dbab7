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

// ReviewHandler holds dependencies for review moderation handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

// List returns the review moderation queue.
func (h *ReviewHandler) List(c echo.Context) error {
	snapshot, err := h.uc.ListModeration(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listPayload(snapshot), "")
}

type moderationInput struct {
	Status entity.ApprovalStatus `json:"status" validate:"required"`
}

// Moderate approves or rejects a pending review.
func (h *ReviewHandler) Moderate(c echo.Context) error {
	var input moderationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	review, err := h.uc.Moderate(c.Request().Context(), c.Param("id"), input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review moderated")
}
