package impl

import (
	"context"
	"log/slog"
	"time"

	"storemgr/internal/domain/entity"
	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/domain/repository"
	"storemgr/internal/usecase"

	"go.uber.org/fx"
)

type reportService struct {
	reportingRepo repository.ReportingRepository
	logger        *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportingRepo repository.ReportingRepository
	Logger        *slog.Logger
}

// NewReportService creates the reporting usecase.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportingRepo: params.ReportingRepo,
		logger:        params.Logger,
	}
}

// saleFacts loads the sale snapshot, collapsing any failure into the
// generic report error the client sees.
func (s *reportService) saleFacts(ctx context.Context) ([]entity.SaleFact, error) {
	facts, err := s.reportingRepo.SaleFacts(ctx)
	if err != nil {
		s.logger.Error("failed to load sale facts", slog.Any("error", err))

		return nil, domainerrors.ErrReportUnavailable
	}

	return facts, nil
}

func (s *reportService) stores(ctx context.Context) ([]entity.Store, error) {
	stores, err := s.reportingRepo.Stores(ctx)
	if err != nil {
		s.logger.Error("failed to load stores", slog.Any("error", err))

		return nil, domainerrors.ErrReportUnavailable
	}

	return stores, nil
}

// ManufacturerSales reports each manufacturer's total and share of all
// manufacturer-attributed sales. Saleless manufacturers stay listed with
// the no-record marker.
func (s *reportService) ManufacturerSales(ctx context.Context) (*usecase.ManufacturerSalesReport, error) {
	facts, err := s.saleFacts(ctx)
	if err != nil {
		return nil, err
	}

	manufacturers, err := s.reportingRepo.Manufacturers(ctx)
	if err != nil {
		s.logger.Error("failed to load manufacturers", slog.Any("error", err))

		return nil, domainerrors.ErrReportUnavailable
	}

	totals := make(map[int64]float64)
	var grandTotal float64

	for _, fact := range facts {
		if fact.ManufacturerID == 0 {
			continue
		}

		totals[fact.ManufacturerID] += fact.PayablePrice()
		grandTotal += fact.PayablePrice()
	}

	records := make([]usecase.ManufacturerSalesRecord, 0, len(manufacturers))
	for _, manufacturer := range manufacturers {
		record := usecase.ManufacturerSalesRecord{
			ManufacturerID:   manufacturer.ManufacturerID,
			ManufacturerName: manufacturer.ManufacturerName,
			TotalSales:       entity.NoRecord(),
			PercentSales:     entity.NoRecord(),
		}
		if total, ok := totals[manufacturer.ManufacturerID]; ok {
			record.TotalSales = entity.Sum(total)
			if grandTotal != 0 {
				record.PercentSales = entity.Sum(total / grandTotal * 100)
			} else {
				record.PercentSales = entity.Sum(0)
			}
		}

		records = append(records, record)
	}

	return &usecase.ManufacturerSalesReport{
		NumManufacturer: len(records),
		Records:         records,
	}, nil
}

// CategorySales reports each category's total, optionally restricted to
// one year.
func (s *reportService) CategorySales(ctx context.Context, year *int) (*usecase.CategorySalesReport, error) {
	facts, err := s.saleFacts(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.reportingRepo.Categories(ctx)
	if err != nil {
		s.logger.Error("failed to load categories", slog.Any("error", err))

		return nil, domainerrors.ErrReportUnavailable
	}

	totals := make(map[int64]float64)
	for _, fact := range facts {
		if fact.CategoryID == 0 {
			continue
		}
		if year != nil && fact.Date.Year() != *year {
			continue
		}

		totals[fact.CategoryID] += fact.PayablePrice()
	}

	records := make([]usecase.CategorySalesRecord, 0, len(categories))
	for _, category := range categories {
		record := usecase.CategorySalesRecord{
			CategoryID:   category.CategoryID,
			CategoryName: category.CategoryName,
			TotalSales:   entity.NoRecord(),
		}
		if total, ok := totals[category.CategoryID]; ok {
			record.TotalSales = entity.Sum(total)
		}

		records = append(records, record)
	}

	return &usecase.CategorySalesReport{
		NumCategory: len(records),
		Year:        year,
		Records:     records,
	}, nil
}

// StoreYearlySales reports each store's total for one year. Stores
// without sales that year report 0, not the marker.
func (s *reportService) StoreYearlySales(ctx context.Context, year int) (*usecase.StoreYearlySalesReport, error) {
	facts, err := s.saleFacts(ctx)
	if err != nil {
		return nil, err
	}

	stores, err := s.stores(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[int64]float64)
	for _, fact := range facts {
		if fact.StoreID == 0 || fact.Date.Year() != year {
			continue
		}

		totals[fact.StoreID] += fact.PayablePrice()
	}

	records := make([]usecase.StoreSalesRecord, 0, len(stores))
	for _, store := range stores {
		records = append(records, usecase.StoreSalesRecord{
			StoreID:    store.StoreID,
			BranchName: store.BranchName,
			TotalSales: totals[store.StoreID],
		})
	}

	return &usecase.StoreYearlySalesReport{
		NumBranches: len(records),
		Year:        year,
		Records:     records,
	}, nil
}

// productSales accumulates one store's sales of one product.
type productSales struct {
	productID   int64
	productName string
	quantity    int64
	total       float64
}

// PopularProducts reports each store's best seller by summed quantity.
// Ties break on the product first encountered in fact order.
func (s *reportService) PopularProducts(ctx context.Context, year *int) (*usecase.PopularProductsReport, error) {
	facts, err := s.saleFacts(ctx)
	if err != nil {
		return nil, err
	}

	stores, err := s.stores(ctx)
	if err != nil {
		return nil, err
	}

	// Per store, per product, in first-seen order so ties are stable.
	perStore := make(map[int64][]*productSales)
	index := make(map[int64]map[int64]*productSales)

	for _, fact := range facts {
		if fact.StoreID == 0 {
			continue
		}
		if year != nil && fact.Date.Year() != *year {
			continue
		}

		byProduct, ok := index[fact.StoreID]
		if !ok {
			byProduct = make(map[int64]*productSales)
			index[fact.StoreID] = byProduct
		}

		sales, ok := byProduct[fact.ProductID]
		if !ok {
			sales = &productSales{productID: fact.ProductID, productName: fact.ProductName}
			byProduct[fact.ProductID] = sales
			perStore[fact.StoreID] = append(perStore[fact.StoreID], sales)
		}

		sales.quantity += fact.Quantity
		sales.total += fact.PayablePrice()
	}

	records := make([]usecase.PopularProductRecord, 0, len(stores))
	for _, store := range stores {
		record := usecase.PopularProductRecord{
			Store: usecase.StoreRef{StoreID: store.StoreID, BranchName: store.BranchName},
			MostPopularProduct: usecase.PopularProduct{
				ProductID:         entity.NoRecord(),
				ProductName:       entity.NoRecordMarker,
				TotalQuantitySold: entity.NoRecord(),
				TotalPriceSold:    entity.NoRecord(),
			},
		}

		var best *productSales
		for _, sales := range perStore[store.StoreID] {
			if best == nil || sales.quantity > best.quantity {
				best = sales
			}
		}
		if best != nil {
			record.MostPopularProduct = usecase.PopularProduct{
				ProductID:         entity.Sum(float64(best.productID)),
				ProductName:       best.productName,
				TotalQuantitySold: entity.Sum(float64(best.quantity)),
				TotalPriceSold:    entity.Sum(best.total),
			}
		}

		records = append(records, record)
	}

	return &usecase.PopularProductsReport{
		NumBranches: len(records),
		Year:        year,
		Records:     records,
	}, nil
}

// MonthlySales breaks one year down into all twelve months per store;
// months without sales carry the marker.
func (s *reportService) MonthlySales(ctx context.Context, year int) (*usecase.MonthlySalesReport, error) {
	facts, err := s.saleFacts(ctx)
	if err != nil {
		return nil, err
	}

	stores, err := s.stores(ctx)
	if err != nil {
		return nil, err
	}

	type storeMonth struct {
		storeID int64
		month   time.Month
	}

	totals := make(map[storeMonth]float64)
	for _, fact := range facts {
		if fact.StoreID == 0 || fact.Date.Year() != year {
			continue
		}

		totals[storeMonth{fact.StoreID, fact.Date.Month()}] += fact.PayablePrice()
	}

	records := make([]usecase.StoreMonthlySales, 0, len(stores))
	for _, store := range stores {
		months := make([]usecase.MonthSales, 0, 12)
		for month := time.January; month <= time.December; month++ {
			sales := usecase.MonthSales{Month: month.String(), TotalSales: entity.NoRecord()}
			if total, ok := totals[storeMonth{store.StoreID, month}]; ok {
				sales.TotalSales = entity.Sum(total)
			}

			months = append(months, sales)
		}

		records = append(records, usecase.StoreMonthlySales{
			Store:        usecase.StoreRef{StoreID: store.StoreID, BranchName: store.BranchName},
			MonthlySales: months,
		})
	}

	return &usecase.MonthlySalesReport{
		NumBranches: len(records),
		Year:        year,
		Records:     records,
	}, nil
}

// AverageMonthlySales averages each month's yearly total across every
// year on record, per store. A month that never had sales in any year
// carries the marker.
func (s *reportService) AverageMonthlySales(ctx context.Context) (*usecase.AverageMonthlySalesReport, error) {
	facts, err := s.saleFacts(ctx)
	if err != nil {
		return nil, err
	}

	stores, err := s.stores(ctx)
	if err != nil {
		return nil, err
	}

	type storeYearMonth struct {
		storeID int64
		year    int
		month   time.Month
	}

	// First pass: total per (store, year, month). The mean is then taken
	// over the yearly totals, so a year with many small sales weighs the
	// same as a year with one big one.
	yearly := make(map[storeYearMonth]float64)
	for _, fact := range facts {
		if fact.StoreID == 0 {
			continue
		}

		key := storeYearMonth{fact.StoreID, fact.Date.Year(), fact.Date.Month()}
		yearly[key] += fact.PayablePrice()
	}

	type storeMonth struct {
		storeID int64
		month   time.Month
	}

	sums := make(map[storeMonth]float64)
	counts := make(map[storeMonth]int)
	for key, total := range yearly {
		monthKey := storeMonth{key.storeID, key.month}
		sums[monthKey] += total
		counts[monthKey]++
	}

	records := make([]usecase.StoreMonthlyAverages, 0, len(stores))
	for _, store := range stores {
		months := make([]usecase.MonthAverage, 0, 12)
		for month := time.January; month <= time.December; month++ {
			average := usecase.MonthAverage{Month: month.String(), AverageSales: entity.NoRecord()}

			monthKey := storeMonth{store.StoreID, month}
			if count := counts[monthKey]; count > 0 {
				average.AverageSales = entity.Sum(sums[monthKey] / float64(count))
			}

			months = append(months, average)
		}

		records = append(records, usecase.StoreMonthlyAverages{
			Store:           usecase.StoreRef{StoreID: store.StoreID, BranchName: store.BranchName},
			MonthlyAverages: months,
		})
	}

	return &usecase.AverageMonthlySalesReport{
		NumBranches: len(records),
		Records:     records,
	}, nil
}

// AverageBillValue reports each store's bill count and mean payable
// total per bill.
func (s *reportService) AverageBillValue(ctx context.Context) (*usecase.BillAveragesReport, error) {
	facts, err := s.saleFacts(ctx)
	if err != nil {
		return nil, err
	}

	stores, err := s.stores(ctx)
	if err != nil {
		return nil, err
	}

	billTotals := make(map[int64]float64)
	billStore := make(map[int64]int64)
	for _, fact := range facts {
		if fact.StoreID == 0 {
			continue
		}

		billTotals[fact.BillID] += fact.PayablePrice()
		billStore[fact.BillID] = fact.StoreID
	}

	sums := make(map[int64]float64)
	counts := make(map[int64]int64)
	for billID, total := range billTotals {
		storeID := billStore[billID]
		sums[storeID] += total
		counts[storeID]++
	}

	records := make([]usecase.StoreBillAverage, 0, len(stores))
	for _, store := range stores {
		record := usecase.StoreBillAverage{
			StoreID:      store.StoreID,
			BranchName:   store.BranchName,
			AvgBillValue: entity.NoRecord(),
		}
		if count := counts[store.StoreID]; count > 0 {
			record.NumBills = count
			record.AvgBillValue = entity.Sum(sums[store.StoreID] / float64(count))
		}

		records = append(records, record)
	}

	return &usecase.BillAveragesReport{
		NumBranches: len(records),
		Records:     records,
	}, nil
}

// ManufacturerProducts lists every manufacturer's catalog. An empty
// product list is legitimate.
func (s *reportService) ManufacturerProducts(ctx context.Context) (*usecase.ManufacturerProductsReport, error) {
	manufacturers, err := s.reportingRepo.Manufacturers(ctx)
	if err != nil {
		s.logger.Error("failed to load manufacturers", slog.Any("error", err))

		return nil, domainerrors.ErrReportUnavailable
	}

	products, err := s.reportingRepo.Products(ctx)
	if err != nil {
		s.logger.Error("failed to load products", slog.Any("error", err))

		return nil, domainerrors.ErrReportUnavailable
	}

	byManufacturer := make(map[int64][]usecase.ProductSummary)
	for _, product := range products {
		if product.ManufacturerID == nil {
			continue
		}

		byManufacturer[*product.ManufacturerID] = append(byManufacturer[*product.ManufacturerID],
			usecase.ProductSummary{
				ProductID:     product.ProductID,
				ProductName:   product.ProductName,
				WeightGm:      product.WeightGm,
				PointsOffered: product.PointsOffered,
			})
	}

	records := make([]usecase.ManufacturerProductsRecord, 0, len(manufacturers))
	for _, manufacturer := range manufacturers {
		catalog := byManufacturer[manufacturer.ManufacturerID]
		if catalog == nil {
			catalog = []usecase.ProductSummary{}
		}

		records = append(records, usecase.ManufacturerProductsRecord{
			ManufacturerID:   manufacturer.ManufacturerID,
			ManufacturerName: manufacturer.ManufacturerName,
			Products:         catalog,
		})
	}

	return &usecase.ManufacturerProductsReport{
		NumManufacturer: len(records),
		Records:         records,
	}, nil
}

// GenderCategorySales breaks each category down by customer gender, in
// fixed F-then-M order.
func (s *reportService) GenderCategorySales(ctx context.Context) (*usecase.GenderCategoryReport, error) {
	facts, err := s.saleFacts(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.reportingRepo.Categories(ctx)
	if err != nil {
		s.logger.Error("failed to load categories", slog.Any("error", err))

		return nil, domainerrors.ErrReportUnavailable
	}

	type categoryGender struct {
		categoryID int64
		gender     string
	}

	quantities := make(map[categoryGender]int64)
	totals := make(map[categoryGender]float64)
	for _, fact := range facts {
		if fact.CategoryID == 0 || fact.Gender == "" {
			continue
		}

		key := categoryGender{fact.CategoryID, fact.Gender}
		quantities[key] += fact.Quantity
		totals[key] += fact.PayablePrice()
	}

	genders := []string{entity.GenderFemale, entity.GenderMale}

	records := make([]usecase.CategoryGenderRecord, 0, len(categories))
	for _, category := range categories {
		breakdown := make([]usecase.GenderSales, 0, len(genders))
		for _, gender := range genders {
			sales := usecase.GenderSales{
				Gender:        gender,
				TotalQuantity: entity.NoRecord(),
				TotalSales:    entity.NoRecord(),
			}

			key := categoryGender{category.CategoryID, gender}
			if quantity, ok := quantities[key]; ok {
				sales.TotalQuantity = entity.Sum(float64(quantity))
				sales.TotalSales = entity.Sum(totals[key])
			}

			breakdown = append(breakdown, sales)
		}

		records = append(records, usecase.CategoryGenderRecord{
			CategoryID:      category.CategoryID,
			CategoryName:    category.CategoryName,
			GenderBreakdown: breakdown,
		})
	}

	return &usecase.GenderCategoryReport{
		NumCategory: len(records),
		Records:     records,
	}, nil
}
