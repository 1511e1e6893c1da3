package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storemgr/internal/domain/entity"
	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/domain/repository"
	"storemgr/internal/errors"
	"storemgr/internal/infra/cache"
	"storemgr/internal/usecase"

	"go.uber.org/fx"
)

type ledgerService struct {
	txManager   repository.TransactionManager
	reportCache cache.ReportCache
	logger      *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ReportCache cache.ReportCache
	Logger      *slog.Logger
}

// NewLedgerService creates the sell-product usecase.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:   params.TxManager,
		reportCache: params.ReportCache,
		logger:      params.Logger,
	}
}

// RecordLineItem records one sale: the product_bill line, the stock
// decrement and the loyalty credit commit or roll back together. The
// stock row is locked FOR UPDATE first, so two concurrent sales of the
// same (store, lot) pair serialize instead of both passing the stock
// check.
func (s *ledgerService) RecordLineItem(ctx context.Context, input *usecase.LineItemInput) (*entity.ProductBill, error) {
	line := &entity.ProductBill{
		BillID:       input.BillID,
		ProductLotID: input.ProductLotID,
		Quantity:     input.Quantity,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ledgerRepo := repoFactory.NewLedgerRepository()

		bill, err := ledgerRepo.FindBill(ctx, input.BillID)
		if err != nil {
			if errors.Is(err, repository.ErrBillNotFound) {
				return domainerrors.ErrBillNotFound
			}

			return err
		}

		// A bill without a store has no stock row to sell from.
		if bill.StoreID == nil {
			return domainerrors.ErrPairingNotFound
		}

		stock, err := ledgerRepo.LockStoreProduct(ctx, *bill.StoreID, input.ProductLotID)
		if err != nil {
			if errors.Is(err, repository.ErrStockRowNotFound) {
				return domainerrors.ErrPairingNotFound
			}

			return err
		}

		if input.Quantity > stock.InStock {
			return domainerrors.ErrInsufficientStock.WithMessage(fmt.Sprintf(
				"insufficient stock: have %d, requested %d", stock.InStock, input.Quantity))
		}

		if err := ledgerRepo.InsertLineItem(ctx, line); err != nil {
			if errors.Is(err, repository.ErrLineItemExists) {
				return domainerrors.ErrDuplicateLineItem
			}

			return err
		}

		if err := ledgerRepo.AdjustStock(ctx, *bill.StoreID, input.ProductLotID, -input.Quantity); err != nil {
			return err
		}

		// Anonymous sales earn no points.
		if bill.CustomerID == nil {
			return nil
		}

		product, err := ledgerRepo.FindLotProduct(ctx, input.ProductLotID)
		if err != nil {
			return err
		}

		points := float64(input.Quantity) * product.PointsOffered
		if points == 0 {
			return nil
		}

		return ledgerRepo.AddCustomerPoints(ctx, *bill.CustomerID, points)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		s.logger.Error("sell transaction failed",
			slog.Int64("bill_id", input.BillID),
			slog.Int64("product_lot_id", input.ProductLotID),
			slog.Any("error", err))

		return nil, domainerrors.ErrTransactionFailed.WithDetails(err.Error())
	}

	if err := s.reportCache.Flush(ctx); err != nil {
		s.logger.Warn("failed to flush report cache after sale", slog.Any("error", err))
	}

	return line, nil
}
