package entity

import "time"

// Product is a sellable item. Category and manufacturer references are
// optional: a product may be listed before either is known.
type Product struct {
	ProductID      int64   `json:"product_id"`
	ProductName    string  `json:"product_name"`
	WeightGm       float64 `json:"weight_gm"`
	PointsOffered  float64 `json:"points_offered"`
	Description    string  `json:"description"`
	CategoryID     *int64  `json:"category_id"`
	ManufacturerID *int64  `json:"manufacturer_id"`
}

// ProductLot is one priced, dated batch of a product.
type ProductLot struct {
	ProductLotID    int64     `json:"product_lot_id"`
	ProductID       int64     `json:"product_id"`
	ManufactureDate time.Time `json:"manufacture_date"`
	ExpiryDate      time.Time `json:"expiry_date"`
	Price           float64   `json:"price"`
	Discount        float64   `json:"discount"`
}

// PayablePrice is the net price of one unit from this lot after discount.
func (l ProductLot) PayablePrice() float64 {
	return l.Price - l.Discount
}

// StoreProduct tracks how many units of a lot a store holds. in_stock is
// the only mutable inventory count and never goes negative.
type StoreProduct struct {
	StoreID      int64 `json:"store_id"`
	ProductLotID int64 `json:"product_lot_id"`
	InStock      int64 `json:"in_stock"`
}
