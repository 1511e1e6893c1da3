// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storemgr/internal/delivery/http/router/handler"
	"storemgr/internal/domain/schema"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	LedgerHandler  *handler.LedgerHandler
	ReportHandler  *handler.ReportHandler
	StockHandler   *handler.StockHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	ledgerHandler  *handler.LedgerHandler
	reportHandler  *handler.ReportHandler
	stockHandler   *handler.StockHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		ledgerHandler:  params.LedgerHandler,
		reportHandler:  params.ReportHandler,
		stockHandler:   params.StockHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Generic inserts and table dumps, one route per descriptor.
	// product_bill inserts go through the ledger instead.
	for _, name := range schema.InsertableTables {
		api.POST("/insert_"+name, r.catalogHandler.Insert(name))
	}
	for _, name := range schema.ListableTables {
		api.GET("/"+name+"/", r.catalogHandler.List(name))
	}

	api.POST("/insert_product_bill", r.ledgerHandler.RecordLineItem)

	// Reports
	api.GET("/manufacturer_sales", r.reportHandler.ManufacturerSales)
	api.GET("/category_sales", r.reportHandler.CategorySales)
	api.GET("/category_sales/:year", r.reportHandler.CategorySalesForYear)
	api.GET("/total_sales_store/:year", r.reportHandler.StoreYearlySales)
	api.GET("/popular_products", r.reportHandler.PopularProducts)
	api.GET("/popular_products/:year", r.reportHandler.PopularProductsForYear)
	api.GET("/total_monthly_sales/:year", r.reportHandler.MonthlySales)
	api.GET("/average_monthly_sales", r.reportHandler.AverageMonthlySales)
	api.GET("/avg_bill_sales", r.reportHandler.AverageBillValue)
	api.GET("/manufacturer_products", r.reportHandler.ManufacturerProducts)
	api.GET("/gender_category", r.reportHandler.GenderCategorySales)

	// Inventory lookups
	api.GET("/store_product_detail/", r.stockHandler.StoreProductDetail)
	api.GET("/min_stock/", r.stockHandler.MinStock)
	api.GET("/max_stock/", r.stockHandler.MaxStock)
	api.GET("/branch/:name", r.stockHandler.ByBranch)
	api.GET("/product/:id", r.stockHandler.ByProduct)
	api.GET("/manufacturer/:id", r.stockHandler.ByManufacturer)
}
