package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storemgr/internal/domain/entity"
	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/errors"
	mockRepo "storemgr/internal/mocks/repository"
	"storemgr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// fixtureFacts is a small sales history over two stores, two categories
// and one manufacturer, plus one storeless anonymous line.
func fixtureFacts() []entity.SaleFact {
	return []entity.SaleFact{
		{BillID: 1, Date: date(2023, time.March, 10), StoreID: 1, BranchName: "Thamel", CustomerID: 1, Gender: "F",
			ProductLotID: 11, Price: 100, Discount: 10, Quantity: 2,
			ProductID: 1, ProductName: "Milk", CategoryID: 1, CategoryName: "Dairy",
			ManufacturerID: 1, ManufacturerName: "Alpha"}, // 180
		{BillID: 1, Date: date(2023, time.March, 10), StoreID: 1, BranchName: "Thamel", CustomerID: 1, Gender: "F",
			ProductLotID: 12, Price: 50, Discount: 0, Quantity: 5,
			ProductID: 2, ProductName: "Bread", CategoryID: 2, CategoryName: "Bakery",
			ManufacturerID: 1, ManufacturerName: "Alpha"}, // 250
		{BillID: 2, Date: date(2024, time.March, 15), StoreID: 2, BranchName: "Patan", CustomerID: 2, Gender: "M",
			ProductLotID: 11, Price: 100, Discount: 10, Quantity: 3,
			ProductID: 1, ProductName: "Milk", CategoryID: 1, CategoryName: "Dairy",
			ManufacturerID: 1, ManufacturerName: "Alpha"}, // 270
		{BillID: 3, Date: date(2023, time.March, 12),
			ProductLotID: 11, Price: 10, Discount: 0, Quantity: 1,
			ProductID: 1, ProductName: "Milk", CategoryID: 1, CategoryName: "Dairy",
			ManufacturerID: 1, ManufacturerName: "Alpha"}, // 10, storeless
		{BillID: 4, Date: date(2024, time.March, 20), StoreID: 1, BranchName: "Thamel", CustomerID: 1, Gender: "F",
			ProductLotID: 13, Price: 70, Discount: 0, Quantity: 1,
			ProductID: 1, ProductName: "Milk", CategoryID: 1, CategoryName: "Dairy",
			ManufacturerID: 1, ManufacturerName: "Alpha"}, // 70
	}
}

func fixtureStores() []entity.Store {
	return []entity.Store{
		{StoreID: 1, BranchName: "Thamel"},
		{StoreID: 2, BranchName: "Patan"},
		{StoreID: 3, BranchName: "Bhaktapur"},
	}
}

func newReportService(reportingRepo *mockRepo.MockReportingRepository) usecase.ReportUsecase {
	return NewReportService(ReportServiceParams{
		ReportingRepo: reportingRepo,
		Logger:        slog.New(slog.DiscardHandler),
	})
}

func TestReportService_ManufacturerSales(t *testing.T) {
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(fixtureFacts(), nil)
	reportingRepo.On("Manufacturers", context.Background()).Return([]entity.Manufacturer{
		{ManufacturerID: 1, ManufacturerName: "Alpha"},
		{ManufacturerID: 2, ManufacturerName: "Beta"},
	}, nil)
	service := newReportService(reportingRepo)

	report, err := service.ManufacturerSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.NumManufacturer)

	alpha := report.Records[0]
	assert.True(t, alpha.TotalSales.Valid)
	assert.InDelta(t, 780.0, alpha.TotalSales.Value, 1e-9)
	assert.InDelta(t, 100.0, alpha.PercentSales.Value, 1e-9)

	// A saleless manufacturer stays listed, with the marker.
	beta := report.Records[1]
	assert.Equal(t, "Beta", beta.ManufacturerName)
	assert.False(t, beta.TotalSales.Valid)
	assert.False(t, beta.PercentSales.Valid)
}

func TestReportService_ManufacturerSales_Reconciliation(t *testing.T) {
	facts := fixtureFacts()
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(facts, nil)
	reportingRepo.On("Manufacturers", context.Background()).Return([]entity.Manufacturer{
		{ManufacturerID: 1, ManufacturerName: "Alpha"},
	}, nil)
	service := newReportService(reportingRepo)

	report, err := service.ManufacturerSales(context.Background())
	require.NoError(t, err)

	var want float64
	for _, fact := range facts {
		want += (fact.Price - fact.Discount) * float64(fact.Quantity)
	}

	var got float64
	for _, record := range report.Records {
		if record.TotalSales.Valid {
			got += record.TotalSales.Value
		}
	}

	assert.InDelta(t, want, got, 1e-9)
}

func TestReportService_CategorySales(t *testing.T) {
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(fixtureFacts(), nil)
	reportingRepo.On("Categories", context.Background()).Return([]entity.Category{
		{CategoryID: 1, CategoryName: "Dairy"},
		{CategoryID: 2, CategoryName: "Bakery"},
		{CategoryID: 3, CategoryName: "Frozen"},
	}, nil)
	service := newReportService(reportingRepo)

	report, err := service.CategorySales(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, report.NumCategory)
	assert.Nil(t, report.Year)
	assert.InDelta(t, 530.0, report.Records[0].TotalSales.Value, 1e-9)
	assert.InDelta(t, 250.0, report.Records[1].TotalSales.Value, 1e-9)
	assert.False(t, report.Records[2].TotalSales.Valid)
}

func TestReportService_CategorySales_YearFilter(t *testing.T) {
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(fixtureFacts(), nil)
	reportingRepo.On("Categories", context.Background()).Return([]entity.Category{
		{CategoryID: 1, CategoryName: "Dairy"},
		{CategoryID: 2, CategoryName: "Bakery"},
	}, nil)
	service := newReportService(reportingRepo)

	year := 2024
	report, err := service.CategorySales(context.Background(), &year)
	require.NoError(t, err)
	require.NotNil(t, report.Year)
	assert.Equal(t, 2024, *report.Year)
	assert.InDelta(t, 340.0, report.Records[0].TotalSales.Value, 1e-9)
	// Bakery only sold in 2023.
	assert.False(t, report.Records[1].TotalSales.Valid)
}

func TestReportService_StoreYearlySales_FillsZero(t *testing.T) {
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(fixtureFacts(), nil)
	reportingRepo.On("Stores", context.Background()).Return(fixtureStores(), nil)
	service := newReportService(reportingRepo)

	report, err := service.StoreYearlySales(context.Background(), 2023)
	require.NoError(t, err)
	assert.Equal(t, 3, report.NumBranches)
	assert.Equal(t, 2023, report.Year)
	assert.InDelta(t, 430.0, report.Records[0].TotalSales, 1e-9)
	// Saleless stores fill with 0 here, not the marker.
	assert.Zero(t, report.Records[1].TotalSales)
	assert.Zero(t, report.Records[2].TotalSales)
}

func TestReportService_PopularProducts(t *testing.T) {
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(fixtureFacts(), nil)
	reportingRepo.On("Stores", context.Background()).Return(fixtureStores(), nil)
	service := newReportService(reportingRepo)

	report, err := service.PopularProducts(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, report.Records, 3)

	// Thamel: Bread sold 5, Milk only 3.
	thamel := report.Records[0].MostPopularProduct
	assert.Equal(t, "Bread", thamel.ProductName)
	assert.InDelta(t, 5.0, thamel.TotalQuantitySold.Value, 1e-9)
	assert.InDelta(t, 250.0, thamel.TotalPriceSold.Value, 1e-9)

	patan := report.Records[1].MostPopularProduct
	assert.Equal(t, "Milk", patan.ProductName)

	// A saleless store keeps its record, fully marked.
	bhaktapur := report.Records[2].MostPopularProduct
	assert.Equal(t, entity.NoRecordMarker, bhaktapur.ProductName)
	assert.False(t, bhaktapur.ProductID.Valid)
	assert.False(t, bhaktapur.TotalQuantitySold.Valid)
}

func TestReportService_PopularProducts_TieBreaksOnFirstSeen(t *testing.T) {
	facts := []entity.SaleFact{
		{BillID: 1, Date: date(2023, time.May, 1), StoreID: 1, BranchName: "Thamel",
			ProductLotID: 11, Price: 10, Quantity: 3, ProductID: 1, ProductName: "Milk"},
		{BillID: 2, Date: date(2023, time.May, 2), StoreID: 1, BranchName: "Thamel",
			ProductLotID: 12, Price: 99, Quantity: 3, ProductID: 2, ProductName: "Bread"},
	}
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(facts, nil)
	reportingRepo.On("Stores", context.Background()).Return([]entity.Store{
		{StoreID: 1, BranchName: "Thamel"},
	}, nil)
	service := newReportService(reportingRepo)

	report, err := service.PopularProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Milk", report.Records[0].MostPopularProduct.ProductName)
}

func TestReportService_MonthlySales(t *testing.T) {
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(fixtureFacts(), nil)
	reportingRepo.On("Stores", context.Background()).Return(fixtureStores(), nil)
	service := newReportService(reportingRepo)

	report, err := service.MonthlySales(context.Background(), 2023)
	require.NoError(t, err)

	thamel := report.Records[0]
	require.Len(t, thamel.MonthlySales, 12)
	assert.Equal(t, "January", thamel.MonthlySales[0].Month)
	assert.Equal(t, "December", thamel.MonthlySales[11].Month)

	march := thamel.MonthlySales[2]
	assert.Equal(t, "March", march.Month)
	assert.InDelta(t, 430.0, march.TotalSales.Value, 1e-9)
	assert.False(t, thamel.MonthlySales[0].TotalSales.Valid)

	// Patan sold nothing in 2023: twelve markers.
	for _, month := range report.Records[1].MonthlySales {
		assert.False(t, month.TotalSales.Valid)
	}
}

func TestReportService_AverageMonthlySales(t *testing.T) {
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(fixtureFacts(), nil)
	reportingRepo.On("Stores", context.Background()).Return(fixtureStores(), nil)
	service := newReportService(reportingRepo)

	report, err := service.AverageMonthlySales(context.Background())
	require.NoError(t, err)

	// Thamel Marches: 430 in 2023 and 70 in 2024, mean 250.
	march := report.Records[0].MonthlyAverages[2]
	assert.Equal(t, "March", march.Month)
	assert.InDelta(t, 250.0, march.AverageSales.Value, 1e-9)

	// A single year averages to itself.
	assert.InDelta(t, 270.0, report.Records[1].MonthlyAverages[2].AverageSales.Value, 1e-9)

	assert.False(t, report.Records[0].MonthlyAverages[0].AverageSales.Valid)
}

func TestReportService_AverageBillValue(t *testing.T) {
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(fixtureFacts(), nil)
	reportingRepo.On("Stores", context.Background()).Return(fixtureStores(), nil)
	service := newReportService(reportingRepo)

	report, err := service.AverageBillValue(context.Background())
	require.NoError(t, err)

	thamel := report.Records[0]
	assert.Equal(t, int64(2), thamel.NumBills)
	assert.InDelta(t, 250.0, thamel.AvgBillValue.Value, 1e-9)

	patan := report.Records[1]
	assert.Equal(t, int64(1), patan.NumBills)
	assert.InDelta(t, 270.0, patan.AvgBillValue.Value, 1e-9)

	bhaktapur := report.Records[2]
	assert.Zero(t, bhaktapur.NumBills)
	assert.False(t, bhaktapur.AvgBillValue.Valid)
}

func TestReportService_ManufacturerProducts(t *testing.T) {
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("Manufacturers", context.Background()).Return([]entity.Manufacturer{
		{ManufacturerID: 1, ManufacturerName: "Alpha"},
		{ManufacturerID: 2, ManufacturerName: "Beta"},
	}, nil)
	reportingRepo.On("Products", context.Background()).Return([]entity.Product{
		{ProductID: 1, ProductName: "Milk", WeightGm: 500, PointsOffered: 2, ManufacturerID: int64Ptr(1)},
		{ProductID: 2, ProductName: "Bread", WeightGm: 250, ManufacturerID: int64Ptr(1)},
		{ProductID: 3, ProductName: "Orphan"},
	}, nil)
	service := newReportService(reportingRepo)

	report, err := service.ManufacturerProducts(context.Background())
	require.NoError(t, err)

	alpha := report.Records[0]
	require.Len(t, alpha.Products, 2)
	assert.Equal(t, "Milk", alpha.Products[0].ProductName)

	// A manufacturer with no products keeps an empty list, not null.
	beta := report.Records[1]
	assert.NotNil(t, beta.Products)
	assert.Empty(t, beta.Products)
}

func TestReportService_GenderCategorySales(t *testing.T) {
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(fixtureFacts(), nil)
	reportingRepo.On("Categories", context.Background()).Return([]entity.Category{
		{CategoryID: 1, CategoryName: "Dairy"},
		{CategoryID: 2, CategoryName: "Bakery"},
	}, nil)
	service := newReportService(reportingRepo)

	report, err := service.GenderCategorySales(context.Background())
	require.NoError(t, err)

	dairy := report.Records[0]
	require.Len(t, dairy.GenderBreakdown, 2)
	assert.Equal(t, entity.GenderFemale, dairy.GenderBreakdown[0].Gender)
	assert.Equal(t, entity.GenderMale, dairy.GenderBreakdown[1].Gender)
	assert.InDelta(t, 3.0, dairy.GenderBreakdown[0].TotalQuantity.Value, 1e-9)
	assert.InDelta(t, 250.0, dairy.GenderBreakdown[0].TotalSales.Value, 1e-9)
	assert.InDelta(t, 270.0, dairy.GenderBreakdown[1].TotalSales.Value, 1e-9)

	// No male customer ever bought bakery.
	bakery := report.Records[1]
	assert.True(t, bakery.GenderBreakdown[0].TotalSales.Valid)
	assert.False(t, bakery.GenderBreakdown[1].TotalSales.Valid)
}

func TestReportService_ReadFailure(t *testing.T) {
	reportingRepo := new(mockRepo.MockReportingRepository)
	reportingRepo.On("SaleFacts", context.Background()).Return(nil, errors.New("connection refused"))
	service := newReportService(reportingRepo)

	_, err := service.ManufacturerSales(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrReportUnavailable)
}
