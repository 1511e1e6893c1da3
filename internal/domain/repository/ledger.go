package repository

import (
	"context"

	"storemgr/internal/domain/entity"
	"storemgr/internal/errors"
)

// Sentinel errors for the ledger repository. The usecase maps these to
// the client-facing error taxonomy.
var (
	ErrBillNotFound     = errors.New("bill not found")
	ErrStockRowNotFound = errors.New("stock row not found")
	ErrLineItemExists   = errors.New("line item exists")
	ErrLotNotFound      = errors.New("product lot not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// LedgerRepository groups the writes of the sell-product transaction.
// Implementations are bound to one database transaction via the factory,
// and LockStoreProduct must take a row-level lock so two concurrent sales
// cannot both pass the stock check against a stale in_stock value.
type LedgerRepository interface {
	FindBill(ctx context.Context, billID int64) (*entity.Bill, error)
	// LockStoreProduct loads the (store, lot) stock row FOR UPDATE.
	LockStoreProduct(ctx context.Context, storeID, productLotID int64) (*entity.StoreProduct, error)
	InsertLineItem(ctx context.Context, line *entity.ProductBill) error
	// AdjustStock applies a delta to in_stock on the locked row.
	AdjustStock(ctx context.Context, storeID, productLotID, delta int64) error
	// FindLotProduct resolves the product a lot belongs to.
	FindLotProduct(ctx context.Context, productLotID int64) (*entity.Product, error)
	// AddCustomerPoints credits loyalty points to a customer.
	AddCustomerPoints(ctx context.Context, customerID int64, points float64) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewLedgerRepository() LedgerRepository
}

// TransactionManager runs a function inside a single database
// transaction: every repository obtained from the factory shares it, and
// the whole unit commits or rolls back together.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
