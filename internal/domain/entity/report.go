package entity

import (
	"strconv"
	"time"
)

// NoRecordMarker is rendered for an aggregate whose group has no matching
// rows, as opposed to a group whose aggregate is legitimately zero.
const NoRecordMarker = "No record available"

// Measure is an aggregate value that may be absent. An invalid Measure
// marshals to NoRecordMarker, so "no sales at all" is distinguishable
// from "sales summing to zero" in every report payload.
type Measure struct {
	Value float64
	Valid bool
}

// Sum returns a valid measure holding v.
func Sum(v float64) Measure {
	return Measure{Value: v, Valid: true}
}

// NoRecord returns the absent measure.
func NoRecord() Measure {
	return Measure{}
}

// MarshalJSON renders the value, or the no-record marker when absent.
func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return strconv.AppendQuote(nil, NoRecordMarker), nil
	}

	return strconv.AppendFloat(nil, m.Value, 'f', -1, 64), nil
}

// SaleFact is one denormalized product_bill line joined to every dimension
// a report can group by. Bills without a store or customer keep their
// lines; the joined columns stay zero-valued.
type SaleFact struct {
	BillID           int64
	Date             time.Time
	StoreID          int64
	BranchName       string
	CustomerID       int64
	Gender           string
	ProductLotID     int64
	Price            float64
	Discount         float64
	Quantity         int64
	ProductID        int64
	ProductName      string
	PointsOffered    float64
	CategoryID       int64
	CategoryName     string
	ManufacturerID   int64
	ManufacturerName string
}

// PayablePrice is the quantity-weighted net price of this line. It is the
// single source of truth for every sales aggregate.
func (f SaleFact) PayablePrice() float64 {
	return (f.Price - f.Discount) * float64(f.Quantity)
}

// StockFact is one denormalized store_product row joined through lot,
// product, category and manufacturer, used by the inventory lookups.
type StockFact struct {
	StoreID          int64     `json:"store_id"`
	BranchName       string    `json:"branch_name"`
	ProductID        int64     `json:"product_id"`
	ProductName      string    `json:"product_name"`
	WeightGm         float64   `json:"weight_gm"`
	Description      string    `json:"description"`
	CategoryName     string    `json:"category_name"`
	InStock          int64     `json:"in_stock"`
	Price            float64   `json:"price"`
	Discount         float64   `json:"discount"`
	ManufacturerID   int64     `json:"manufacturer_id"`
	ManufacturerName string    `json:"manufacturer_name"`
	ManufactureDate  time.Time `json:"manufacture_date"`
	ExpiryDate       time.Time `json:"expiry_date"`
	PointsOffered    float64   `json:"points_offered"`
}
