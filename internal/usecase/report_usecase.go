package usecase

import (
	"context"

	"storemgr/internal/domain/entity"
)

// StoreRef identifies a store inside a nested report record.
type StoreRef struct {
	StoreID    int64  `json:"store_id"`
	BranchName string `json:"branch_name"`
}

// ManufacturerSalesRecord is one manufacturer's share of total sales.
// Both measures carry the no-record marker for a saleless manufacturer.
type ManufacturerSalesRecord struct {
	ManufacturerID   int64          `json:"manufacturer_id"`
	ManufacturerName string         `json:"manufacturer_name"`
	TotalSales       entity.Measure `json:"total_sales"`
	PercentSales     entity.Measure `json:"percent_sales"`
}

// ManufacturerSalesReport lists every manufacturer, saleless ones included.
type ManufacturerSalesReport struct {
	NumManufacturer int                       `json:"num_manufacturer"`
	Records         []ManufacturerSalesRecord `json:"records"`
}

// CategorySalesRecord is one category's sales total.
type CategorySalesRecord struct {
	CategoryID   int64          `json:"category_id"`
	CategoryName string         `json:"category_name"`
	TotalSales   entity.Measure `json:"total_sales"`
}

// CategorySalesReport lists every category. Year is set only on the
// year-filtered variant.
type CategorySalesReport struct {
	NumCategory int                   `json:"num_category"`
	Year        *int                  `json:"year,omitempty"`
	Records     []CategorySalesRecord `json:"records"`
}

// StoreSalesRecord is one store's sales total for a year. A store with
// no sales that year reports 0, not the no-record marker.
type StoreSalesRecord struct {
	StoreID    int64   `json:"store_id"`
	BranchName string  `json:"branch_name"`
	TotalSales float64 `json:"total_sales"`
}

// StoreYearlySalesReport lists every store's total for one year.
type StoreYearlySalesReport struct {
	NumBranches int                `json:"num_branches"`
	Year        int                `json:"year"`
	Records     []StoreSalesRecord `json:"records"`
}

// PopularProduct is the best-selling product of one store, by summed
// quantity. All fields carry the no-record marker for a saleless store.
type PopularProduct struct {
	ProductID         entity.Measure `json:"product_id"`
	ProductName       string         `json:"product_name"`
	TotalQuantitySold entity.Measure `json:"total_quantity_sold"`
	TotalPriceSold    entity.Measure `json:"total_price_sold"`
}

// PopularProductRecord pairs a store with its most popular product.
type PopularProductRecord struct {
	Store              StoreRef       `json:"store"`
	MostPopularProduct PopularProduct `json:"most_popular_product"`
}

// PopularProductsReport lists every store. Year is set only on the
// year-filtered variant.
type PopularProductsReport struct {
	NumBranches int                    `json:"num_branches"`
	Year        *int                   `json:"year,omitempty"`
	Records     []PopularProductRecord `json:"records"`
}

// MonthSales is one month's total for one store.
type MonthSales struct {
	Month      string         `json:"month"`
	TotalSales entity.Measure `json:"total_sales"`
}

// StoreMonthlySales covers all twelve months for one store; months
// without sales carry the no-record marker.
type StoreMonthlySales struct {
	Store        StoreRef     `json:"store"`
	MonthlySales []MonthSales `json:"monthly_sales"`
}

// MonthlySalesReport breaks one year down by store and month.
type MonthlySalesReport struct {
	NumBranches int                 `json:"num_branches"`
	Year        int                 `json:"year"`
	Records     []StoreMonthlySales `json:"records"`
}

// MonthAverage is the mean of one month's yearly totals across all years
// on record for one store.
type MonthAverage struct {
	Month        string         `json:"month"`
	AverageSales entity.Measure `json:"average_sales"`
}

// StoreMonthlyAverages covers all twelve months for one store.
type StoreMonthlyAverages struct {
	Store           StoreRef       `json:"store"`
	MonthlyAverages []MonthAverage `json:"monthly_average_sales"`
}

// AverageMonthlySalesReport averages each month across every year on record.
type AverageMonthlySalesReport struct {
	NumBranches int                    `json:"num_branches"`
	Records     []StoreMonthlyAverages `json:"records"`
}

// StoreBillAverage is one store's bill count and mean bill value.
type StoreBillAverage struct {
	StoreID      int64          `json:"store_id"`
	BranchName   string         `json:"branch_name"`
	NumBills     int64          `json:"num_bills"`
	AvgBillValue entity.Measure `json:"avg_bill_value"`
}

// BillAveragesReport lists every store's average bill value.
type BillAveragesReport struct {
	NumBranches int                `json:"num_branches"`
	Records     []StoreBillAverage `json:"records"`
}

// ProductSummary is the short product form used in nested listings.
type ProductSummary struct {
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	WeightGm      float64 `json:"weight_gm"`
	PointsOffered float64 `json:"points_offered"`
}

// ManufacturerProductsRecord is one manufacturer with its catalog. An
// empty product list is legitimate.
type ManufacturerProductsRecord struct {
	ManufacturerID   int64            `json:"manufacturer_id"`
	ManufacturerName string           `json:"manufacturer_name"`
	Products         []ProductSummary `json:"products"`
}

// ManufacturerProductsReport lists every manufacturer's products.
type ManufacturerProductsReport struct {
	NumManufacturer int                          `json:"num_manufacturer"`
	Records         []ManufacturerProductsRecord `json:"records"`
}

// GenderSales is one gender's share of a category's sales.
type GenderSales struct {
	Gender        string         `json:"gender"`
	TotalQuantity entity.Measure `json:"total_quantity"`
	TotalSales    entity.Measure `json:"total_sales"`
}

// CategoryGenderRecord breaks one category down by customer gender, in
// fixed F-then-M order.
type CategoryGenderRecord struct {
	CategoryID      int64         `json:"category_id"`
	CategoryName    string        `json:"category_name"`
	GenderBreakdown []GenderSales `json:"gender_breakdown"`
}

// GenderCategoryReport lists every category's per-gender sales.
type GenderCategoryReport struct {
	NumCategory int                    `json:"num_category"`
	Records     []CategoryGenderRecord `json:"records"`
}

// ReportUsecase builds the analytical reports. Every method reads a
// denormalized fact snapshot and aggregates in memory; a saleless group
// stays in the output with the no-record marker unless noted otherwise.
type ReportUsecase interface {
	ManufacturerSales(ctx context.Context) (*ManufacturerSalesReport, error)
	// CategorySales reports per-category totals, optionally restricted to
	// one year.
	CategorySales(ctx context.Context, year *int) (*CategorySalesReport, error)
	// StoreYearlySales reports per-store totals for one year; absent
	// stores fill with 0.
	StoreYearlySales(ctx context.Context, year int) (*StoreYearlySalesReport, error)
	// PopularProducts reports each store's best seller by summed quantity,
	// optionally restricted to one year. Ties break on the first product
	// encountered in fact order.
	PopularProducts(ctx context.Context, year *int) (*PopularProductsReport, error)
	MonthlySales(ctx context.Context, year int) (*MonthlySalesReport, error)
	AverageMonthlySales(ctx context.Context) (*AverageMonthlySalesReport, error)
	AverageBillValue(ctx context.Context) (*BillAveragesReport, error)
	ManufacturerProducts(ctx context.Context) (*ManufacturerProductsReport, error)
	GenderCategorySales(ctx context.Context) (*GenderCategoryReport, error)
}
