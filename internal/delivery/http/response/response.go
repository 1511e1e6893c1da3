// Package response defines the JSON envelope every endpoint renders.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the unified API envelope. Status mirrors the HTTP status
// code; Data is an empty object on errors, never null.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// New builds an envelope without writing it, for callers that marshal
// the payload themselves (the report cache).
func New(statusCode int, message string, data any) Response {
	if data == nil {
		data = map[string]any{}
	}

	return Response{
		Status:  statusCode,
		Message: message,
		Data:    data,
	}
}

// Success renders a 200 envelope.
func Success(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, New(http.StatusOK, message, data))
}

// Error renders an error envelope with an empty data object.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, New(statusCode, message, nil))
}

// BadRequest renders a 400 envelope with the conventional prefix.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "Bad request: "+message)
}

// NotFound renders a 404 envelope.
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, "Not found: "+message)
}
