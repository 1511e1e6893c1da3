package entity

import "time"

// Customer gender codes as stored in the customer table.
const (
	GenderFemale = "F"
	GenderMale   = "M"
)

// Customer is a registered shopper. PointsCollected only ever grows, as a
// side effect of the ledger transaction.
type Customer struct {
	CustomerID      int64   `json:"customer_id"`
	CustomerName    string  `json:"customer_name"`
	Gender          string  `json:"gender"`
	Address         string  `json:"address"`
	Email           string  `json:"email"`
	PhoneNo         string  `json:"phone_no"`
	PointsCollected float64 `json:"points_collected"`
}

// Bill is the header of one sale transaction. Customer and store are
// optional: walk-in sales and online orders leave them unset.
type Bill struct {
	BillID     int64     `json:"bill_id"`
	Date       time.Time `json:"date"`
	CustomerID *int64    `json:"customer_id"`
	StoreID    *int64    `json:"store_id"`
}

// ProductBill is one line item of a bill: a quantity drawn from one lot.
type ProductBill struct {
	BillID       int64 `json:"bill_id"`
	ProductLotID int64 `json:"product_lot_id"`
	Quantity     int64 `json:"quantity"`
}
