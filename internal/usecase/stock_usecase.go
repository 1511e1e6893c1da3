package usecase

import (
	"context"
	"time"

	"storemgr/internal/domain/entity"
)

// StockDump is the payload of a stock lookup.
type StockDump struct {
	NumRecords int                `json:"num_records"`
	Records    []entity.StockFact `json:"records"`
}

// ManufacturerStockRow is a stock row viewed from the manufacturer side:
// the store and in_stock columns are dropped.
type ManufacturerStockRow struct {
	ProductID        int64     `json:"product_id"`
	ProductName      string    `json:"product_name"`
	WeightGm         float64   `json:"weight_gm"`
	Description      string    `json:"description"`
	CategoryName     string    `json:"category_name"`
	Price            float64   `json:"price"`
	Discount         float64   `json:"discount"`
	ManufacturerID   int64     `json:"manufacturer_id"`
	ManufacturerName string    `json:"manufacturer_name"`
	ManufactureDate  time.Time `json:"manufacture_date"`
	ExpiryDate       time.Time `json:"expiry_date"`
	PointsOffered    float64   `json:"points_offered"`
}

// ManufacturerStockDump is the payload of the manufacturer stock lookup.
type ManufacturerStockDump struct {
	NumRecords int                    `json:"num_records"`
	Records    []ManufacturerStockRow `json:"records"`
}

// StockUsecase answers the inventory lookups over the denormalized stock
// snapshot. All lookups are read-only.
type StockUsecase interface {
	// StoreProductDetail dumps every stock row fully denormalized.
	StoreProductDetail(ctx context.Context) (*StockDump, error)
	// MinStock returns the 3 rows with the lowest in_stock.
	MinStock(ctx context.Context) (*StockDump, error)
	// MaxStock returns the 3 rows with the highest in_stock.
	MaxStock(ctx context.Context) (*StockDump, error)
	// ByBranch filters rows by branch name, case-insensitively.
	ByBranch(ctx context.Context, branchName string) (*StockDump, error)
	// ByProduct filters rows by product id.
	ByProduct(ctx context.Context, productID int64) (*StockDump, error)
	// ByManufacturer filters rows by manufacturer id, dropping the
	// store and stock columns.
	ByManufacturer(ctx context.Context, manufacturerID int64) (*ManufacturerStockDump, error)
}
