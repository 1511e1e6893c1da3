// Package usecase contains hand-written testify mocks of the usecase
// interfaces, for handler tests.
package usecase

import (
	"context"

	"storemgr/internal/domain/entity"
	"storemgr/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockCatalogUsecase mocks usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) Insert(ctx context.Context, entityName string, body map[string]any) (string, error) {
	args := m.Called(ctx, entityName, body)

	return args.String(0), args.Error(1)
}

func (m *MockCatalogUsecase) List(ctx context.Context, entityName string) (*usecase.TableDump, error) {
	args := m.Called(ctx, entityName)
	if dump := args.Get(0); dump != nil {
		return dump.(*usecase.TableDump), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockLedgerUsecase mocks usecase.LedgerUsecase.
type MockLedgerUsecase struct {
	mock.Mock
}

func (m *MockLedgerUsecase) RecordLineItem(ctx context.Context, input *usecase.LineItemInput) (*entity.ProductBill, error) {
	args := m.Called(ctx, input)
	if line := args.Get(0); line != nil {
		return line.(*entity.ProductBill), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockReportUsecase mocks usecase.ReportUsecase.
type MockReportUsecase struct {
	mock.Mock
}

func (m *MockReportUsecase) ManufacturerSales(ctx context.Context) (*usecase.ManufacturerSalesReport, error) {
	args := m.Called(ctx)
	if report := args.Get(0); report != nil {
		return report.(*usecase.ManufacturerSalesReport), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportUsecase) CategorySales(ctx context.Context, year *int) (*usecase.CategorySalesReport, error) {
	args := m.Called(ctx, year)
	if report := args.Get(0); report != nil {
		return report.(*usecase.CategorySalesReport), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportUsecase) StoreYearlySales(ctx context.Context, year int) (*usecase.StoreYearlySalesReport, error) {
	args := m.Called(ctx, year)
	if report := args.Get(0); report != nil {
		return report.(*usecase.StoreYearlySalesReport), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportUsecase) PopularProducts(ctx context.Context, year *int) (*usecase.PopularProductsReport, error) {
	args := m.Called(ctx, year)
	if report := args.Get(0); report != nil {
		return report.(*usecase.PopularProductsReport), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportUsecase) MonthlySales(ctx context.Context, year int) (*usecase.MonthlySalesReport, error) {
	args := m.Called(ctx, year)
	if report := args.Get(0); report != nil {
		return report.(*usecase.MonthlySalesReport), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportUsecase) AverageMonthlySales(ctx context.Context) (*usecase.AverageMonthlySalesReport, error) {
	args := m.Called(ctx)
	if report := args.Get(0); report != nil {
		return report.(*usecase.AverageMonthlySalesReport), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportUsecase) AverageBillValue(ctx context.Context) (*usecase.BillAveragesReport, error) {
	args := m.Called(ctx)
	if report := args.Get(0); report != nil {
		return report.(*usecase.BillAveragesReport), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportUsecase) ManufacturerProducts(ctx context.Context) (*usecase.ManufacturerProductsReport, error) {
	args := m.Called(ctx)
	if report := args.Get(0); report != nil {
		return report.(*usecase.ManufacturerProductsReport), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportUsecase) GenderCategorySales(ctx context.Context) (*usecase.GenderCategoryReport, error) {
	args := m.Called(ctx)
	if report := args.Get(0); report != nil {
		return report.(*usecase.GenderCategoryReport), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockStockUsecase mocks usecase.StockUsecase.
type MockStockUsecase struct {
	mock.Mock
}

func (m *MockStockUsecase) StoreProductDetail(ctx context.Context) (*usecase.StockDump, error) {
	args := m.Called(ctx)
	if dump := args.Get(0); dump != nil {
		return dump.(*usecase.StockDump), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStockUsecase) MinStock(ctx context.Context) (*usecase.StockDump, error) {
	args := m.Called(ctx)
	if dump := args.Get(0); dump != nil {
		return dump.(*usecase.StockDump), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStockUsecase) MaxStock(ctx context.Context) (*usecase.StockDump, error) {
	args := m.Called(ctx)
	if dump := args.Get(0); dump != nil {
		return dump.(*usecase.StockDump), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStockUsecase) ByBranch(ctx context.Context, branchName string) (*usecase.StockDump, error) {
	args := m.Called(ctx, branchName)
	if dump := args.Get(0); dump != nil {
		return dump.(*usecase.StockDump), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStockUsecase) ByProduct(ctx context.Context, productID int64) (*usecase.StockDump, error) {
	args := m.Called(ctx, productID)
	if dump := args.Get(0); dump != nil {
		return dump.(*usecase.StockDump), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStockUsecase) ByManufacturer(ctx context.Context, manufacturerID int64) (*usecase.ManufacturerStockDump, error) {
	args := m.Called(ctx, manufacturerID)
	if dump := args.Get(0); dump != nil {
		return dump.(*usecase.ManufacturerStockDump), args.Error(1)
	}

	return nil, args.Error(1)
}
