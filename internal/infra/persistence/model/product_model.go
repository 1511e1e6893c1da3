package model

import "time"

// ProductModel mirrors the 'product' table. Category and manufacturer
// references cascade on update and may be NULL.
type ProductModel struct {
	ProductID      int64   `gorm:"column:product_id;primaryKey;autoIncrement"`
	ProductName    string  `gorm:"column:product_name;type:varchar(100);not null;uniqueIndex:unique_key_product"`
	WeightGm       float64 `gorm:"column:weight_gm;not null;uniqueIndex:unique_key_product"`
	PointsOffered  float64 `gorm:"column:points_offered;not null;default:0;uniqueIndex:unique_key_product"`
	Description    *string `gorm:"column:description;type:varchar(1000);uniqueIndex:unique_key_product"`
	CategoryID     *int64  `gorm:"column:category_id;uniqueIndex:unique_key_product"`
	ManufacturerID *int64  `gorm:"column:manufacturer_id;uniqueIndex:unique_key_product"`

	Category     *CategoryModel     `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnUpdate:CASCADE"`
	Manufacturer *ManufacturerModel `gorm:"foreignKey:ManufacturerID;references:ManufacturerID;constraint:OnUpdate:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "product"
}

// ProductLotModel mirrors the 'product_lot' table: one priced, dated
// batch of a product. Lots disappear with their product.
type ProductLotModel struct {
	ProductLotID    int64     `gorm:"column:product_lot_id;primaryKey;autoIncrement"`
	ManufactureDate time.Time `gorm:"column:manufacture_date;type:date;not null;uniqueIndex:unique_key_product_lot"`
	ExpiryDate      time.Time `gorm:"column:expiry_date;type:date;not null;uniqueIndex:unique_key_product_lot"`
	Price           float64   `gorm:"column:price;not null;uniqueIndex:unique_key_product_lot"`
	Discount        float64   `gorm:"column:discount;not null;default:0;uniqueIndex:unique_key_product_lot"`
	ProductID       int64     `gorm:"column:product_id;not null;uniqueIndex:unique_key_product_lot"`

	Product *ProductModel `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductLotModel) TableName() string {
	return "product_lot"
}

// StoreProductModel mirrors the 'store_product' table: the only mutable
// inventory count. Rows cascade away with their store or lot.
type StoreProductModel struct {
	StoreID      int64 `gorm:"column:store_id;primaryKey;autoIncrement:false"`
	ProductLotID int64 `gorm:"column:product_lot_id;primaryKey;autoIncrement:false"`
	InStock      int64 `gorm:"column:in_stock;not null;default:0"`

	Store      *StoreModel      `gorm:"foreignKey:StoreID;references:StoreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ProductLot *ProductLotModel `gorm:"foreignKey:ProductLotID;references:ProductLotID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StoreProductModel) TableName() string {
	return "store_product"
}
