// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"

	"storemgr/internal/delivery/http/response"
	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves every generic insert and listing endpoint. The
// entity name is fixed per route at registration time.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Insert returns the handler for one entity's insert endpoint. The body
// is a flat column->value object echoed back on success.
func (h *CatalogHandler) Insert(entityName string) echo.HandlerFunc {
	return func(c echo.Context) error {
		body := map[string]any{}
		if err := c.Bind(&body); err != nil {
			return domainerrors.ErrInvalidInput
		}

		entity, err := h.uc.Insert(c.Request().Context(), entityName, body)
		if err != nil {
			return errors.WithStack(err)
		}

		message := fmt.Sprintf("Successfully inserted %s record into database", entity)

		return response.Success(c, body, message)
	}
}

// List returns the handler for one entity's table dump endpoint.
func (h *CatalogHandler) List(entityName string) echo.HandlerFunc {
	return func(c echo.Context) error {
		dump, err := h.uc.List(c.Request().Context(), entityName)
		if err != nil {
			return errors.WithStack(err)
		}

		message := fmt.Sprintf("Successfully retrieved %s records", entityName)

		return response.Success(c, dump, message)
	}
}
