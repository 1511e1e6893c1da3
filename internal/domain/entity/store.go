// Package entity contains the pure domain types of the retail store
// management system, kept free of persistence and transport concerns.
package entity

// Store is one physical branch of the retail chain.
type Store struct {
	StoreID    int64  `json:"store_id"`
	BranchName string `json:"branch_name"`
	Address    string `json:"address"`
	PhoneNo    string `json:"phone_no"`
}

// Category is a product grouping such as "Body Care" or "Packaged Food".
type Category struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// Manufacturer identifies the producer of a product.
type Manufacturer struct {
	ManufacturerID   int64  `json:"manufacturer_id"`
	ManufacturerName string `json:"manufacturer_name"`
	Address          string `json:"address"`
	Email            string `json:"email"`
	PhoneNo          string `json:"phone_no"`
	Country          string `json:"country"`
}
