package postgres

import (
	"context"

	"storemgr/internal/domain/entity"
	"storemgr/internal/domain/repository"
	"storemgr/internal/errors"
	"storemgr/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormLedgerRepository implements the ledger writes of the sell-product
// transaction. It is always bound to a transaction through the factory,
// never to the shared connection pool.
type gormLedgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for gormLedgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &gormLedgerRepository{db: db}
}

func (r *gormLedgerRepository) FindBill(ctx context.Context, billID int64) (*entity.Bill, error) {
	var bill model.BillModel
	if err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBillNotFound
		}

		return nil, errors.Wrap(err, "failed to find bill")
	}

	return &entity.Bill{
		BillID:     bill.BillID,
		Date:       bill.Date,
		CustomerID: bill.CustomerID,
		StoreID:    bill.StoreID,
	}, nil
}

// LockStoreProduct loads the stock row FOR UPDATE, so a concurrent sale
// of the same (store, lot) pair blocks until this transaction finishes.
func (r *gormLedgerRepository) LockStoreProduct(ctx context.Context, storeID, productLotID int64) (*entity.StoreProduct, error) {
	var row model.StoreProductModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("store_id = ? AND product_lot_id = ?", storeID, productLotID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockRowNotFound
		}

		return nil, errors.Wrap(err, "failed to lock stock row")
	}

	return &entity.StoreProduct{
		StoreID:      row.StoreID,
		ProductLotID: row.ProductLotID,
		InStock:      row.InStock,
	}, nil
}

func (r *gormLedgerRepository) InsertLineItem(ctx context.Context, line *entity.ProductBill) error {
	row := model.ProductBillModel{
		BillID:       line.BillID,
		ProductLotID: line.ProductLotID,
		Quantity:     line.Quantity,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrLineItemExists
		}

		return errors.Wrap(err, "failed to insert line item")
	}

	return nil
}

// AdjustStock applies a delta to in_stock on the previously locked row.
func (r *gormLedgerRepository) AdjustStock(ctx context.Context, storeID, productLotID, delta int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.StoreProductModel{}).
		Where("store_id = ? AND product_lot_id = ?", storeID, productLotID).
		UpdateColumn("in_stock", gorm.Expr("in_stock + ?", delta))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStockRowNotFound
	}

	return nil
}

func (r *gormLedgerRepository) FindLotProduct(ctx context.Context, productLotID int64) (*entity.Product, error) {
	var lot model.ProductLotModel
	if err := r.db.WithContext(ctx).
		Where("product_lot_id = ?", productLotID).
		First(&lot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLotNotFound
		}

		return nil, errors.Wrap(err, "failed to find product lot")
	}

	var product model.ProductModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", lot.ProductID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLotNotFound
		}

		return nil, errors.Wrap(err, "failed to find lot product")
	}

	return toProductEntity(&product), nil
}

func (r *gormLedgerRepository) AddCustomerPoints(ctx context.Context, customerID int64, points float64) error {
	result := r.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("customer_id = ?", customerID).
		UpdateColumn("points_collected", gorm.Expr("points_collected + ?", points))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to add customer points")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func toProductEntity(m *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		WeightGm:       m.WeightGm,
		PointsOffered:  m.PointsOffered,
		CategoryID:     m.CategoryID,
		ManufacturerID: m.ManufacturerID,
	}
	if m.Description != nil {
		product.Description = *m.Description
	}

	return product
}
