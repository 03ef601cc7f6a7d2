package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "teamed/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders errors that escape the handlers. Business outcomes
// never reach it; handlers turn those into flat message bodies.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.logger.Warn("Request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.String("path", c.Request().URL.Path),
			slog.String("error", err.Error()),
		)
		_ = c.JSON(appErr.HTTPCode(), domainerrors.Response{
			Message: appErr.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		// Bad requests come from the request validator and binder.
		code := "HTTP_ERROR"
		if httpErr.Code == http.StatusBadRequest {
			code = domainerrors.ErrValidationFailed.ErrorCode()
		}
		_ = c.JSON(httpErr.Code, domainerrors.Response{
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code: code,
			},
		})

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(domainerrors.ErrInternalError.HTTPCode(), domainerrors.Response{
		Message: domainerrors.ErrInternalError.Message(),
		Error: &domainerrors.ErrorInfo{
			Code: domainerrors.ErrInternalError.ErrorCode(),
		},
	})
}
