package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cliphub/internal/delivery/http/response"
	domainerrors "cliphub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Body) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body response.Body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := renderError(t, errors.Wrap(domainerrors.ErrUserNotFound, "login failed"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
	assert.False(t, body.Success)
	assert.Equal(t, "User does not exist", body.Message)
}

func TestErrorMiddleware_AppErrorWithDetails(t *testing.T) {
	rec, body := renderError(t, domainerrors.ErrValidationFailed.WithDetails("email must be valid"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Errors)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.StatusMethodNotAllowed, body.StatusCode)
	assert.False(t, body.Success)
}

func TestErrorMiddleware_UnknownErrorIsOpaque(t *testing.T) {
	rec, body := renderError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Message)
	// Internal details never leak into the envelope.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
