package handler

import (
	"storemgr/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, map[string]any{"healthy": true}, "Service is up")
}
