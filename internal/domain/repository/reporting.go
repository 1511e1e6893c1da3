package repository

import (
	"context"

	"storemgr/internal/domain/entity"
)

// ReportingRepository supplies the denormalized fact rows and dimension
// dumps the reporting pipeline aggregates over. All methods are
// read-only and tolerate a slightly stale snapshot.
type ReportingRepository interface {
	// SaleFacts returns one row per product_bill line joined to store,
	// customer, lot, product, category and manufacturer. Lines on bills
	// without a store or customer are preserved with zero-valued joins.
	SaleFacts(ctx context.Context) ([]entity.SaleFact, error)
	// StockFacts returns one row per store_product joined through lot,
	// product, category and manufacturer (inner joins).
	StockFacts(ctx context.Context) ([]entity.StockFact, error)

	Stores(ctx context.Context) ([]entity.Store, error)
	Categories(ctx context.Context) ([]entity.Category, error)
	Manufacturers(ctx context.Context) ([]entity.Manufacturer, error)
	Products(ctx context.Context) ([]entity.Product, error)
}
