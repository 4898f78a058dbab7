package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"console/internal/delivery/http/response"
	domainerrors "console/internal/domain/errors"
	"console/internal/errors"
)

func handleError(t *testing.T, err error) (int, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/admin/vendors/v1/reject", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_MapsAppError(t *testing.T) {
	t.Parallel()

	code, body := handleError(t, errors.WithStack(domainerrors.ErrReasonRequired))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Success)
	assert.Equal(t, "REASON_REQUIRED", body.Error.Code)
	assert.Equal(t, "A non-empty reason is required for this action", body.Message)
}

func TestErrorMiddleware_UpstreamMessageSurvivesVerbatim(t *testing.T) {
	t.Parallel()

	code, body := handleError(t, errors.WithStack(
		domainerrors.NewUpstreamError(http.StatusConflict, "vendor already verified")))

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "UPSTREAM_ERROR", body.Error.Code)
	assert.Equal(t, "vendor already verified", body.Message)
}

func TestErrorMiddleware_MapsEchoHTTPError(t *testing.T) {
	t.Parallel()

	code, body := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "field validation failed"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorBecomesInternal(t *testing.T) {
	t.Parallel()

	code, body := handleError(t, errors.New("socket closed"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}
