package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "teamed/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create user"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Database execution failed", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", body.Error.Code)
}

func TestErrorMiddleware_ValidationFailure(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "Key: 'addLeadRequest.Name' failed on the 'required' tag"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), body.Error.Code)
	assert.Contains(t, body.Message, "required")
}

func TestErrorMiddleware_HTTPErrorPassthrough(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorFallback(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), body.Error.Code)
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	require.NoError(t, c.JSON(http.StatusOK, echo.Map{"message": "already sent"}))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "already sent")
}
