package handler

import (
	"log/slog"
	"net/http"

	"console/internal/delivery/http/response"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VendorHandler holds dependencies for vendor verification handlers.
type VendorHandler struct {
	uc     usecase.VendorUsecase
	logger *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{uc: uc, logger: logger}
}

// List returns one page of vendors.
func (h *VendorHandler) List(c echo.Context) error {
	snapshot, err := h.uc.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listPayload(snapshot), "")
}

// Get returns a single vendor.
func (h *VendorHandler) Get(c echo.Context) error {
	vendor, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "")
}

// Approve verifies the vendor.
func (h *VendorHandler) Approve(c echo.Context) error {
	vendor, err := h.uc.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor approved")
}

// Reject declines the vendor's verification. A reason is required.
func (h *VendorHandler) Reject(c echo.Context) error {
	var input reasonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	vendor, err := h.uc.Reject(c.Request().Context(), c.Param("id"), input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor rejected")
}

// RequestDeletion files a deletion request for the vendor's account.
func (h *VendorHandler) RequestDeletion(c echo.Context) error {
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
