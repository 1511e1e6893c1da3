package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"storemgr/internal/domain/entity"
	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/domain/repository"
	"storemgr/internal/usecase"

	"go.uber.org/fx"
)

// extremeStockCount is how many rows the min/max stock lookups return.
const extremeStockCount = 3

type stockService struct {
	reportingRepo repository.ReportingRepository
	logger        *slog.Logger
}

// StockServiceParams holds dependencies for StockService, injected by Fx.
type StockServiceParams struct {
	fx.In

	ReportingRepo repository.ReportingRepository
	Logger        *slog.Logger
}

// NewStockService creates the inventory lookup usecase.
func NewStockService(params StockServiceParams) usecase.StockUsecase {
	return &stockService{
		reportingRepo: params.ReportingRepo,
		logger:        params.Logger,
	}
}

func (s *stockService) stockFacts(ctx context.Context) ([]entity.StockFact, error) {
	facts, err := s.reportingRepo.StockFacts(ctx)
	if err != nil {
		s.logger.Error("failed to load stock facts", slog.Any("error", err))

		return nil, domainerrors.ErrReportUnavailable
	}

	return facts, nil
}

func newStockDump(facts []entity.StockFact) *usecase.StockDump {
	if facts == nil {
		facts = []entity.StockFact{}
	}

	return &usecase.StockDump{
		NumRecords: len(facts),
		Records:    facts,
	}
}

// StoreProductDetail dumps every stock row fully denormalized.
func (s *stockService) StoreProductDetail(ctx context.Context) (*usecase.StockDump, error) {
	facts, err := s.stockFacts(ctx)
	if err != nil {
		return nil, err
	}

	return newStockDump(facts), nil
}

// MinStock returns the rows with the lowest in_stock. Ties keep the
// snapshot order.
func (s *stockService) MinStock(ctx context.Context) (*usecase.StockDump, error) {
	facts, err := s.stockFacts(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(facts, func(i, j int) bool {
		return facts[i].InStock < facts[j].InStock
	})

	return newStockDump(headStock(facts, extremeStockCount)), nil
}

// MaxStock returns the rows with the highest in_stock. Ties keep the
// snapshot order.
func (s *stockService) MaxStock(ctx context.Context) (*usecase.StockDump, error) {
	facts, err := s.stockFacts(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(facts, func(i, j int) bool {
		return facts[i].InStock > facts[j].InStock
	})

	return newStockDump(headStock(facts, extremeStockCount)), nil
}

// ByBranch filters rows by branch name, case-insensitively.
func (s *stockService) ByBranch(ctx context.Context, branchName string) (*usecase.StockDump, error) {
	facts, err := s.stockFacts(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]entity.StockFact, 0)
	for _, fact := range facts {
		if strings.EqualFold(fact.BranchName, branchName) {
			matched = append(matched, fact)
		}
	}

	return newStockDump(matched), nil
}

// ByProduct filters rows by product id.
func (s *stockService) ByProduct(ctx context.Context, productID int64) (*usecase.StockDump, error) {
	facts, err := s.stockFacts(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]entity.StockFact, 0)
	for _, fact := range facts {
		if fact.ProductID == productID {
			matched = append(matched, fact)
		}
	}

	return newStockDump(matched), nil
}

// ByManufacturer filters rows by manufacturer id, without the store and
// stock columns.
func (s *stockService) ByManufacturer(ctx context.Context, manufacturerID int64) (*usecase.ManufacturerStockDump, error) {
	facts, err := s.stockFacts(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]usecase.ManufacturerStockRow, 0)
	for _, fact := range facts {
		if fact.ManufacturerID != manufacturerID {
			continue
		}

		rows = append(rows, usecase.ManufacturerStockRow{
			ProductID:        fact.ProductID,
			ProductName:      fact.ProductName,
			WeightGm:         fact.WeightGm,
			Description:      fact.Description,
			CategoryName:     fact.CategoryName,
			Price:            fact.Price,
			Discount:         fact.Discount,
			ManufacturerID:   fact.ManufacturerID,
			ManufacturerName: fact.ManufacturerName,
			ManufactureDate:  fact.ManufactureDate,
			ExpiryDate:       fact.ExpiryDate,
			PointsOffered:    fact.PointsOffered,
		})
	}

	return &usecase.ManufacturerStockDump{
		NumRecords: len(rows),
		Records:    rows,
	}, nil
}

func headStock(facts []entity.StockFact, n int) []entity.StockFact {
	if len(facts) > n {
		return facts[:n]
	}

	return facts
}
