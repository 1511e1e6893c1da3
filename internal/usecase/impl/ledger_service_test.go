package impl

import (
	"context"
	"log/slog"
	"testing"

	"storemgr/internal/domain/entity"
	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/domain/repository"
	"storemgr/internal/errors"
	"storemgr/internal/infra/cache"
	mockRepo "storemgr/internal/mocks/repository"
	"storemgr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgerService(ledgerRepo repository.LedgerRepository) usecase.LedgerUsecase {
	return NewLedgerService(LedgerServiceParams{
		TxManager: &mockRepo.StubTransactionManager{
			Factory: &mockRepo.StubRepositoryFactory{LedgerRepo: ledgerRepo},
		},
		ReportCache: cache.NewNoopReportCache(),
		Logger:      slog.New(slog.DiscardHandler),
	})
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestLedgerService_RecordLineItem_Success(t *testing.T) {
	ledgerRepo := new(mockRepo.MockLedgerRepository)
	service := newLedgerService(ledgerRepo)

	ctx := context.Background()
	bill := &entity.Bill{BillID: 7, StoreID: int64Ptr(1), CustomerID: int64Ptr(42)}

	ledgerRepo.On("FindBill", ctx, int64(7)).Return(bill, nil)
	ledgerRepo.On("LockStoreProduct", ctx, int64(1), int64(50000001)).
		Return(&entity.StoreProduct{StoreID: 1, ProductLotID: 50000001, InStock: 32}, nil)
	ledgerRepo.On("InsertLineItem", ctx, &entity.ProductBill{BillID: 7, ProductLotID: 50000001, Quantity: 10}).
		Return(nil)
	ledgerRepo.On("AdjustStock", ctx, int64(1), int64(50000001), int64(-10)).Return(nil)
	ledgerRepo.On("FindLotProduct", ctx, int64(50000001)).
		Return(&entity.Product{ProductID: 3, PointsOffered: 1.5}, nil)
	ledgerRepo.On("AddCustomerPoints", ctx, int64(42), 15.0).Return(nil)

	line, err := service.RecordLineItem(ctx, &usecase.LineItemInput{
		BillID: 7, ProductLotID: 50000001, Quantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), line.Quantity)
	ledgerRepo.AssertExpectations(t)
}

func TestLedgerService_RecordLineItem_AnonymousBillSkipsPoints(t *testing.T) {
	ledgerRepo := new(mockRepo.MockLedgerRepository)
	service := newLedgerService(ledgerRepo)

	ctx := context.Background()
	bill := &entity.Bill{BillID: 7, StoreID: int64Ptr(1)}

	ledgerRepo.On("FindBill", ctx, int64(7)).Return(bill, nil)
	ledgerRepo.On("LockStoreProduct", ctx, int64(1), int64(5)).
		Return(&entity.StoreProduct{StoreID: 1, ProductLotID: 5, InStock: 32}, nil)
	ledgerRepo.On("InsertLineItem", ctx, &entity.ProductBill{BillID: 7, ProductLotID: 5, Quantity: 10}).
		Return(nil)
	ledgerRepo.On("AdjustStock", ctx, int64(1), int64(5), int64(-10)).Return(nil)

	_, err := service.RecordLineItem(ctx, &usecase.LineItemInput{
		BillID: 7, ProductLotID: 5, Quantity: 10,
	})
	require.NoError(t, err)
	ledgerRepo.AssertNotCalled(t, "FindLotProduct", ctx, int64(5))
	ledgerRepo.AssertNotCalled(t, "AddCustomerPoints", ctx, int64(0), 0.0)
}

func TestLedgerService_RecordLineItem_BillNotFound(t *testing.T) {
	ledgerRepo := new(mockRepo.MockLedgerRepository)
	service := newLedgerService(ledgerRepo)

	ctx := context.Background()
	ledgerRepo.On("FindBill", ctx, int64(999)).Return(nil, repository.ErrBillNotFound)

	_, err := service.RecordLineItem(ctx, &usecase.LineItemInput{
		BillID: 999, ProductLotID: 5, Quantity: 1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrBillNotFound)
}

func TestLedgerService_RecordLineItem_BillWithoutStore(t *testing.T) {
	ledgerRepo := new(mockRepo.MockLedgerRepository)
	service := newLedgerService(ledgerRepo)

	ctx := context.Background()
	ledgerRepo.On("FindBill", ctx, int64(7)).Return(&entity.Bill{BillID: 7}, nil)

	_, err := service.RecordLineItem(ctx, &usecase.LineItemInput{
		BillID: 7, ProductLotID: 5, Quantity: 1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPairingNotFound)
}

func TestLedgerService_RecordLineItem_PairingNotFound(t *testing.T) {
	ledgerRepo := new(mockRepo.MockLedgerRepository)
	service := newLedgerService(ledgerRepo)

	ctx := context.Background()
	ledgerRepo.On("FindBill", ctx, int64(7)).
		Return(&entity.Bill{BillID: 7, StoreID: int64Ptr(1)}, nil)
	ledgerRepo.On("LockStoreProduct", ctx, int64(1), int64(5)).
		Return(nil, repository.ErrStockRowNotFound)

	_, err := service.RecordLineItem(ctx, &usecase.LineItemInput{
		BillID: 7, ProductLotID: 5, Quantity: 1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPairingNotFound)
}

func TestLedgerService_RecordLineItem_InsufficientStock(t *testing.T) {
	ledgerRepo := new(mockRepo.MockLedgerRepository)
	service := newLedgerService(ledgerRepo)

	ctx := context.Background()
	ledgerRepo.On("FindBill", ctx, int64(7)).
		Return(&entity.Bill{BillID: 7, StoreID: int64Ptr(1)}, nil)
	ledgerRepo.On("LockStoreProduct", ctx, int64(1), int64(5)).
		Return(&entity.StoreProduct{StoreID: 1, ProductLotID: 5, InStock: 22}, nil)

	_, err := service.RecordLineItem(ctx, &usecase.LineItemInput{
		BillID: 7, ProductLotID: 5, Quantity: 40,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "insufficient stock: have 22, requested 40", appErr.Message())

	// The stock check failed before any write.
	ledgerRepo.AssertNotCalled(t, "InsertLineItem", ctx, &entity.ProductBill{BillID: 7, ProductLotID: 5, Quantity: 40})
	ledgerRepo.AssertNotCalled(t, "AdjustStock", ctx, int64(1), int64(5), int64(-40))
}

func TestLedgerService_RecordLineItem_DuplicateLineItem(t *testing.T) {
	ledgerRepo := new(mockRepo.MockLedgerRepository)
	service := newLedgerService(ledgerRepo)

	ctx := context.Background()
	ledgerRepo.On("FindBill", ctx, int64(7)).
		Return(&entity.Bill{BillID: 7, StoreID: int64Ptr(1)}, nil)
	ledgerRepo.On("LockStoreProduct", ctx, int64(1), int64(5)).
		Return(&entity.StoreProduct{StoreID: 1, ProductLotID: 5, InStock: 10}, nil)
	ledgerRepo.On("InsertLineItem", ctx, &entity.ProductBill{BillID: 7, ProductLotID: 5, Quantity: 2}).
		Return(repository.ErrLineItemExists)

	_, err := service.RecordLineItem(ctx, &usecase.LineItemInput{
		BillID: 7, ProductLotID: 5, Quantity: 2,
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateLineItem)
}

func TestLedgerService_RecordLineItem_TransactionFailure(t *testing.T) {
	service := NewLedgerService(LedgerServiceParams{
		TxManager:   &mockRepo.StubTransactionManager{Err: errors.New("connection reset")},
		ReportCache: cache.NewNoopReportCache(),
		Logger:      slog.New(slog.DiscardHandler),
	})

	_, err := service.RecordLineItem(context.Background(), &usecase.LineItemInput{
		BillID: 7, ProductLotID: 5, Quantity: 1,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTransactionFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "connection reset", appErr.Details())
}
