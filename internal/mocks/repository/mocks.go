// Package repository contains hand-written testify mocks of the domain
// repository interfaces, for usecase tests.
package repository

import (
	"context"

	"storemgr/internal/domain/entity"
	"storemgr/internal/domain/repository"
	"storemgr/internal/domain/schema"

	"github.com/stretchr/testify/mock"
)

// MockTableRepository mocks repository.TableRepository.
type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Insert(ctx context.Context, desc schema.Descriptor, row map[string]any) error {
	args := m.Called(ctx, desc, row)

	return args.Error(0)
}

func (m *MockTableRepository) List(ctx context.Context, desc schema.Descriptor) ([]map[string]any, error) {
	args := m.Called(ctx, desc)
	if rows := args.Get(0); rows != nil {
		return rows.([]map[string]any), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockLedgerRepository mocks repository.LedgerRepository.
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindBill(ctx context.Context, billID int64) (*entity.Bill, error) {
	args := m.Called(ctx, billID)
	if bill := args.Get(0); bill != nil {
		return bill.(*entity.Bill), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLedgerRepository) LockStoreProduct(ctx context.Context, storeID, productLotID int64) (*entity.StoreProduct, error) {
	args := m.Called(ctx, storeID, productLotID)
	if row := args.Get(0); row != nil {
		return row.(*entity.StoreProduct), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLedgerRepository) InsertLineItem(ctx context.Context, line *entity.ProductBill) error {
	args := m.Called(ctx, line)

	return args.Error(0)
}

func (m *MockLedgerRepository) AdjustStock(ctx context.Context, storeID, productLotID, delta int64) error {
	args := m.Called(ctx, storeID, productLotID, delta)

	return args.Error(0)
}

func (m *MockLedgerRepository) FindLotProduct(ctx context.Context, productLotID int64) (*entity.Product, error) {
	args := m.Called(ctx, productLotID)
	if product := args.Get(0); product != nil {
		return product.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLedgerRepository) AddCustomerPoints(ctx context.Context, customerID int64, points float64) error {
	args := m.Called(ctx, customerID, points)

	return args.Error(0)
}

// MockReportingRepository mocks repository.ReportingRepository.
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SaleFacts(ctx context.Context) ([]entity.SaleFact, error) {
	args := m.Called(ctx)
	if facts := args.Get(0); facts != nil {
		return facts.([]entity.SaleFact), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportingRepository) StockFacts(ctx context.Context) ([]entity.StockFact, error) {
	args := m.Called(ctx)
	if facts := args.Get(0); facts != nil {
		return facts.([]entity.StockFact), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportingRepository) Stores(ctx context.Context) ([]entity.Store, error) {
	args := m.Called(ctx)
	if stores := args.Get(0); stores != nil {
		return stores.([]entity.Store), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportingRepository) Categories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if categories := args.Get(0); categories != nil {
		return categories.([]entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportingRepository) Manufacturers(ctx context.Context) ([]entity.Manufacturer, error) {
	args := m.Called(ctx)
	if manufacturers := args.Get(0); manufacturers != nil {
		return manufacturers.([]entity.Manufacturer), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReportingRepository) Products(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if products := args.Get(0); products != nil {
		return products.([]entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

// StubRepositoryFactory hands out one fixed ledger repository.
type StubRepositoryFactory struct {
	LedgerRepo repository.LedgerRepository
}

func (f *StubRepositoryFactory) NewLedgerRepository() repository.LedgerRepository {
	return f.LedgerRepo
}

// StubTransactionManager runs the callback against the stub factory
// without any real transaction, or short-circuits with Err when set.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
	Err     error
}

func (m *StubTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(m.Factory)
}
