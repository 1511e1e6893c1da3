// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"storemgr/internal/delivery/http/response"
	domainerrors "storemgr/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates errors into the response envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. AppErrors
// carry their own status and client-facing message; everything else is
// logged and rendered without internal detail.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Details() != "" {
			m.logger.Warn("request failed",
				slog.String("path", c.Request().URL.Path),
				slog.String("code", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
			)
		}

		m.render(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.render(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message))

		return
	}

	m.logger.Error("unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	if err := response.Error(c, http.StatusInternalServerError, "Internal server error"); err != nil {
		m.logger.Error("failed to render error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) render(c echo.Context, statusCode int, message string) {
	var err error
	switch statusCode {
	case http.StatusBadRequest:
		err = response.BadRequest(c, message)
	case http.StatusNotFound:
		err = response.NotFound(c, message)
	default:
		err = response.Error(c, statusCode, message)
	}
	if err != nil {
		m.logger.Error("failed to render error response", slog.Any("error", err))
	}
}
