package handler

import (
	"log/slog"
	"strconv"

	"storemgr/internal/delivery/http/response"
	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StockHandler serves the inventory lookup endpoints.
type StockHandler struct {
	uc     usecase.StockUsecase
	logger *slog.Logger
}

// NewStockHandler is the constructor for StockHandler, injected by Fx.
func NewStockHandler(uc usecase.StockUsecase, logger *slog.Logger) *StockHandler {
	return &StockHandler{
		uc:     uc,
		logger: logger,
	}
}

func idParam(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidInput.WithMessage("invalid id " + raw)
	}

	return id, nil
}

// StoreProductDetail handles GET /api/store_product_detail/.
func (h *StockHandler) StoreProductDetail(c echo.Context) error {
	dump, err := h.uc.StoreProductDetail(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, dump, "Successfully retrieved store product details")
}

// MinStock handles GET /api/min_stock/.
func (h *StockHandler) MinStock(c echo.Context) error {
	dump, err := h.uc.MinStock(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, dump, "Successfully retrieved products with lowest stock")
}

// MaxStock handles GET /api/max_stock/.
func (h *StockHandler) MaxStock(c echo.Context) error {
	dump, err := h.uc.MaxStock(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, dump, "Successfully retrieved products with highest stock")
}

// ByBranch handles GET /api/branch/:name.
func (h *StockHandler) ByBranch(c echo.Context) error {
	dump, err := h.uc.ByBranch(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, dump, "Successfully retrieved stock of branch "+c.Param("name"))
}

// ByProduct handles GET /api/product/:id.
func (h *StockHandler) ByProduct(c echo.Context) error {
	productID, err := idParam(c)
	if err != nil {
		return err
	}

	dump, err := h.uc.ByProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, dump, "Successfully retrieved stock of product")
}

// ByManufacturer handles GET /api/manufacturer/:id.
func (h *StockHandler) ByManufacturer(c echo.Context) error {
	manufacturerID, err := idParam(c)
	if err != nil {
		return err
	}

	dump, err := h.uc.ByManufacturer(c.Request().Context(), manufacturerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, dump, "Successfully retrieved products of manufacturer")
}
