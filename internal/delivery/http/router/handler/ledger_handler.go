package handler

import (
	"log/slog"

	"storemgr/internal/delivery/http/response"
	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LedgerHandler serves the sell-product endpoint.
type LedgerHandler struct {
	uc     usecase.LedgerUsecase
	logger *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler, injected by Fx.
func NewLedgerHandler(uc usecase.LedgerUsecase, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordLineItem handles POST /api/insert_product_bill: it books the
// line item against the bill's store inventory.
func (h *LedgerHandler) RecordLineItem(c echo.Context) error {
	var input usecase.LineItemInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput
	}

	if input == (usecase.LineItemInput{}) {
		return domainerrors.ErrEmptyInput
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	line, err := h.uc.RecordLineItem(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, line, "Successfully inserted product_bill record into database")
}
