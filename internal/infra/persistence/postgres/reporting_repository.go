package postgres

import (
	"context"

	"storemgr/internal/domain/entity"
	"storemgr/internal/domain/repository"
	"storemgr/internal/errors"
	"storemgr/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// gormReportingRepository supplies the denormalized fact rows the
// reporting pipeline aggregates over. All reads run outside any
// transaction and tolerate a slightly stale snapshot.
type gormReportingRepository struct {
	db *gorm.DB
}

// NewReportingRepository is the constructor for gormReportingRepository.
func NewReportingRepository(db *gorm.DB) repository.ReportingRepository {
	return &gormReportingRepository{db: db}
}

// saleFactQuery flattens one product_bill line against every dimension a
// report groups by. Bills without a store or customer keep their lines;
// the joined columns come back zero-valued via COALESCE.
const saleFactQuery = `
SELECT pb.bill_id,
       b.date,
       COALESCE(b.store_id, 0)         AS store_id,
       COALESCE(s.branch_name, '')     AS branch_name,
       COALESCE(b.customer_id, 0)      AS customer_id,
       COALESCE(cu.gender, '')         AS gender,
       pb.product_lot_id,
       pl.price,
       pl.discount,
       pb.quantity,
       p.product_id,
       p.product_name,
       p.points_offered,
       COALESCE(p.category_id, 0)      AS category_id,
       COALESCE(c.category_name, '')   AS category_name,
       COALESCE(p.manufacturer_id, 0)  AS manufacturer_id,
       COALESCE(m.manufacturer_name, '') AS manufacturer_name
FROM product_bill pb
JOIN bill b          ON b.bill_id = pb.bill_id
JOIN product_lot pl  ON pl.product_lot_id = pb.product_lot_id
JOIN product p       ON p.product_id = pl.product_id
LEFT JOIN store s        ON s.store_id = b.store_id
LEFT JOIN customer cu    ON cu.customer_id = b.customer_id
LEFT JOIN category c     ON c.category_id = p.category_id
LEFT JOIN manufacturer m ON m.manufacturer_id = p.manufacturer_id
ORDER BY pb.bill_id, pb.product_lot_id`

func (r *gormReportingRepository) SaleFacts(ctx context.Context) ([]entity.SaleFact, error) {
	var facts []entity.SaleFact
	if err := r.db.WithContext(ctx).Raw(saleFactQuery).Scan(&facts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load sale facts")
	}

	return facts, nil
}

// stockFactQuery flattens one store_product row through lot, product,
// category and manufacturer. Inner joins throughout: a stock row is only
// reportable once its product is fully classified.
const stockFactQuery = `
SELECT sp.store_id,
       s.branch_name,
       p.product_id,
       p.product_name,
       p.weight_gm,
       COALESCE(p.description, '') AS description,
       c.category_name,
       sp.in_stock,
       pl.price,
       pl.discount,
       m.manufacturer_id,
       m.manufacturer_name,
       pl.manufacture_date,
       pl.expiry_date,
       p.points_offered
FROM store_product sp
JOIN store s         ON s.store_id = sp.store_id
JOIN product_lot pl  ON pl.product_lot_id = sp.product_lot_id
JOIN product p       ON p.product_id = pl.product_id
JOIN category c      ON c.category_id = p.category_id
JOIN manufacturer m  ON m.manufacturer_id = p.manufacturer_id
ORDER BY sp.store_id, sp.product_lot_id`

func (r *gormReportingRepository) StockFacts(ctx context.Context) ([]entity.StockFact, error) {
	var facts []entity.StockFact
	if err := r.db.WithContext(ctx).Raw(stockFactQuery).Scan(&facts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load stock facts")
	}

	return facts, nil
}

func (r *gormReportingRepository) Stores(ctx context.Context) ([]entity.Store, error) {
	var rows []model.StoreModel
	if err := r.db.WithContext(ctx).Order("store_id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]entity.Store, 0, len(rows))
	for _, row := range rows {
		stores = append(stores, entity.Store{
			StoreID:    row.StoreID,
			BranchName: row.BranchName,
			Address:    row.Address,
			PhoneNo:    row.PhoneNo,
		})
	}

	return stores, nil
}

func (r *gormReportingRepository) Categories(ctx context.Context) ([]entity.Category, error) {
	var rows []model.CategoryModel
	if err := r.db.WithContext(ctx).Order("category_id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, entity.Category{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
		})
	}

	return categories, nil
}

func (r *gormReportingRepository) Manufacturers(ctx context.Context) ([]entity.Manufacturer, error) {
	var rows []model.ManufacturerModel
	if err := r.db.WithContext(ctx).Order("manufacturer_id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list manufacturers")
	}

	manufacturers := make([]entity.Manufacturer, 0, len(rows))
	for _, row := range rows {
		manufacturers = append(manufacturers, entity.Manufacturer{
			ManufacturerID:   row.ManufacturerID,
			ManufacturerName: row.ManufacturerName,
			Address:          row.Address,
			Email:            row.Email,
			PhoneNo:          row.PhoneNo,
			Country:          row.Country,
		})
	}

	return manufacturers, nil
}

func (r *gormReportingRepository) Products(ctx context.Context) ([]entity.Product, error) {
	var rows []model.ProductModel
	if err := r.db.WithContext(ctx).Order("product_id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, *toProductEntity(&row))
	}

	return products, nil
}
