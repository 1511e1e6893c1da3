// Package model contains the GORM persistence structs mirroring the
// relational schema. They are kept separate from the domain entities so
// persistence tags never leak into the domain layer.
package model

// StoreModel mirrors the 'store' table.
type StoreModel struct {
	StoreID    int64  `gorm:"column:store_id;primaryKey;autoIncrement"`
	BranchName string `gorm:"column:branch_name;type:varchar(20);not null;uniqueIndex:unique_key_store"`
	Address    string `gorm:"column:address;type:varchar(255);not null"`
	PhoneNo    string `gorm:"column:phone_no;type:varchar(15);not null"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "store"
}

// CategoryModel mirrors the 'category' table.
type CategoryModel struct {
	CategoryID   int64  `gorm:"column:category_id;primaryKey;autoIncrement"`
	CategoryName string `gorm:"column:category_name;type:varchar(50);not null;uniqueIndex:unique_key_category"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "category"
}

// ManufacturerModel mirrors the 'manufacturer' table. Uniqueness spans
// the identifying columns, not the name alone: two manufacturers may
// share a name across countries.
type ManufacturerModel struct {
	ManufacturerID   int64  `gorm:"column:manufacturer_id;primaryKey;autoIncrement"`
	ManufacturerName string `gorm:"column:manufacturer_name;type:varchar(255);not null;uniqueIndex:unique_key_manufacturer"`
	Address          string `gorm:"column:address;type:varchar(255);not null;uniqueIndex:unique_key_manufacturer"`
	Email            string `gorm:"column:email;type:varchar(100);not null"`
	PhoneNo          string `gorm:"column:phone_no;type:varchar(15);not null;uniqueIndex:unique_key_manufacturer"`
	Country          string `gorm:"column:country;type:varchar(100);not null;uniqueIndex:unique_key_manufacturer"`
}

// TableName explicitly sets the table name for GORM.
func (ManufacturerModel) TableName() string {
	return "manufacturer"
}
