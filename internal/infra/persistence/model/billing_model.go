package model

import "time"

// CustomerModel mirrors the 'customer' table.
type CustomerModel struct {
	CustomerID      int64   `gorm:"column:customer_id;primaryKey;autoIncrement"`
	CustomerName    string  `gorm:"column:customer_name;type:varchar(100);not null"`
	Gender          string  `gorm:"column:gender;type:varchar(1);not null"`
	Address         string  `gorm:"column:address;type:varchar(255);not null"`
	Email           string  `gorm:"column:email;type:varchar(100);not null"`
	PhoneNo         string  `gorm:"column:phone_no;type:varchar(15);not null"`
	PointsCollected float64 `gorm:"column:points_collected;not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customer"
}

// BillModel mirrors the 'bill' table: the header of one sale. Customer
// and store are optional.
type BillModel struct {
	BillID     int64     `gorm:"column:bill_id;primaryKey;autoIncrement"`
	Date       time.Time `gorm:"column:date;type:date;not null"`
	CustomerID *int64    `gorm:"column:customer_id"`
	StoreID    *int64    `gorm:"column:store_id"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnUpdate:CASCADE"`
	Store    *StoreModel    `gorm:"foreignKey:StoreID;references:StoreID;constraint:OnUpdate:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BillModel) TableName() string {
	return "bill"
}

// ProductBillModel mirrors the 'product_bill' table: one line item of a
// bill. Line items cascade away with their bill or lot.
type ProductBillModel struct {
	BillID       int64 `gorm:"column:bill_id;primaryKey;autoIncrement:false"`
	ProductLotID int64 `gorm:"column:product_lot_id;primaryKey;autoIncrement:false"`
	Quantity     int64 `gorm:"column:quantity;not null"`

	Bill       *BillModel       `gorm:"foreignKey:BillID;references:BillID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ProductLot *ProductLotModel `gorm:"foreignKey:ProductLotID;references:ProductLotID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductBillModel) TableName() string {
	return "product_bill"
}
