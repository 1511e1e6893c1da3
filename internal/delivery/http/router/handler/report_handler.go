package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"storemgr/internal/delivery/http/response"
	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/infra/cache"
	"storemgr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler serves the analytical reports, read-through cached by
// request path.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	cache  cache.ReportCache
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, reportCache cache.ReportCache, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		cache:  reportCache,
		logger: logger,
	}
}

// serveCached answers from the cache when possible, otherwise builds the
// report, stores the rendered envelope and serves it. Cache failures
// degrade to building the report, never to a request failure.
func (h *ReportHandler) serveCached(c echo.Context, message string, build func() (any, error)) error {
	ctx := c.Request().Context()
	key := c.Request().URL.Path

	if payload, ok, err := h.cache.Get(ctx, key); err == nil && ok {
		return c.JSONBlob(http.StatusOK, payload)
	} else if err != nil {
		h.logger.Warn("report cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	data, err := build()
	if err != nil {
		return errors.WithStack(err)
	}

	payload, err := json.Marshal(response.New(http.StatusOK, message, data))
	if err != nil {
		return errors.Wrap(err, "failed to marshal report")
	}

	if err := h.cache.Set(ctx, key, payload); err != nil {
		h.logger.Warn("report cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return c.JSONBlob(http.StatusOK, payload)
}

func yearParam(c echo.Context) (int, error) {
	raw := c.Param("year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrInvalidInput.WithMessage("invalid year " + raw)
	}

	return year, nil
}

// ManufacturerSales handles GET /api/manufacturer_sales.
func (h *ReportHandler) ManufacturerSales(c echo.Context) error {
	return h.serveCached(c, "Successfully generated sales report of all manufacturers", func() (any, error) {
		return h.uc.ManufacturerSales(c.Request().Context())
	})
}

// CategorySales handles GET /api/category_sales.
func (h *ReportHandler) CategorySales(c echo.Context) error {
	return h.serveCached(c, "Successfully generated sales report of all categories", func() (any, error) {
		return h.uc.CategorySales(c.Request().Context(), nil)
	})
}

// CategorySalesForYear handles GET /api/category_sales/:year.
func (h *ReportHandler) CategorySalesForYear(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	return h.serveCached(c, "Successfully generated sales report of all categories", func() (any, error) {
		return h.uc.CategorySales(c.Request().Context(), &year)
	})
}

// StoreYearlySales handles GET /api/total_sales_store/:year.
func (h *ReportHandler) StoreYearlySales(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	return h.serveCached(c, "Successfully generated yearly sales report of all stores", func() (any, error) {
		return h.uc.StoreYearlySales(c.Request().Context(), year)
	})
}

// PopularProducts handles GET /api/popular_products.
func (h *ReportHandler) PopularProducts(c echo.Context) error {
	return h.serveCached(c, "Successfully generated most popular products report", func() (any, error) {
		return h.uc.PopularProducts(c.Request().Context(), nil)
	})
}

// PopularProductsForYear handles GET /api/popular_products/:year.
func (h *ReportHandler) PopularProductsForYear(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	return h.serveCached(c, "Successfully generated most popular products report", func() (any, error) {
		return h.uc.PopularProducts(c.Request().Context(), &year)
	})
}

// MonthlySales handles GET /api/total_monthly_sales/:year.
func (h *ReportHandler) MonthlySales(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	return h.serveCached(c, "Successfully generated monthly sales report of all stores", func() (any, error) {
		return h.uc.MonthlySales(c.Request().Context(), year)
	})
}

// AverageMonthlySales handles GET /api/average_monthly_sales.
func (h *ReportHandler) AverageMonthlySales(c echo.Context) error {
	return h.serveCached(c, "Successfully generated average monthly sales report of all stores", func() (any, error) {
		return h.uc.AverageMonthlySales(c.Request().Context())
	})
}

// AverageBillValue handles GET /api/avg_bill_sales.
func (h *ReportHandler) AverageBillValue(c echo.Context) error {
	return h.serveCached(c, "Successfully generated average bill value report of all stores", func() (any, error) {
		return h.uc.AverageBillValue(c.Request().Context())
	})
}

// ManufacturerProducts handles GET /api/manufacturer_products.
func (h *ReportHandler) ManufacturerProducts(c echo.Context) error {
	return h.serveCached(c, "Successfully generated products report of all manufacturers", func() (any, error) {
		return h.uc.ManufacturerProducts(c.Request().Context())
	})
}

// GenderCategorySales handles GET /api/gender_category.
func (h *ReportHandler) GenderCategorySales(c echo.Context) error {
	return h.serveCached(c, "Successfully generated gender wise sales report of all categories", func() (any, error) {
		return h.uc.GenderCategorySales(c.Request().Context())
	})
}
