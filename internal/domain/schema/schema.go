// Package schema describes the relational tables the generic CRUD path
// operates on. One Descriptor per table replaces the per-entity handler
// duplication: the insert/list usecase, repository and handler are all
// parameterized by these values.
package schema

import (
	"fmt"

	domainerrors "storemgr/internal/domain/errors"
)

// Descriptor declares how the generic data-access routine treats a table.
type Descriptor struct {
	// Entity is the route segment and message label, e.g. "product_lot".
	Entity string
	// Table is the SQL table name.
	Table string
	// ServerAssigned names the auto-increment key clients must not supply.
	// Empty for tables whose full key is client-provided.
	ServerAssigned string
	// Columns lists every column accepted in an insert body.
	Columns []string
	// Required lists columns the database will reject as NULL; kept on the
	// descriptor so callers can render field-level hints.
	Required []string
	// OrderBy fixes the listing order of table dumps.
	OrderBy string
}

// ValidateInsert applies the request-level checks shared by every insert
// endpoint: non-empty body, no server-assigned key, no unknown columns.
// Constraint-level failures are left to the database.
func (d Descriptor) ValidateInsert(body map[string]any) error {
	if len(body) == 0 {
		return domainerrors.ErrEmptyInput
	}

	if d.ServerAssigned != "" {
		if _, ok := body[d.ServerAssigned]; ok {
			return domainerrors.ErrServerAssignedKey.WithMessage(
				fmt.Sprintf("%s cannot be specified in input json", d.ServerAssigned))
		}
	}

	allowed := make(map[string]struct{}, len(d.Columns))
	for _, col := range d.Columns {
		allowed[col] = struct{}{}
	}
	for col := range body {
		if _, ok := allowed[col]; !ok {
			return domainerrors.ErrUnknownColumn.WithMessage(
				fmt.Sprintf("unrecognized column %s", col))
		}
	}

	return nil
}

// Tables is the registry of descriptors keyed by entity name. product_bill
// is listed for table dumps only: its inserts go through the inventory
// ledger, never the generic path.
var Tables = map[string]Descriptor{
	"store": {
		Entity:   "store",
		Table:    "store",
		Columns:  []string{"store_id", "branch_name", "address", "phone_no"},
		Required: []string{"branch_name", "address", "phone_no"},
		OrderBy:  "store_id",
	},
	"category": {
		Entity:   "category",
		Table:    "category",
		Columns:  []string{"category_id", "category_name"},
		Required: []string{"category_name"},
		OrderBy:  "category_id",
	},
	"manufacturer": {
		Entity:   "manufacturer",
		Table:    "manufacturer",
		Columns:  []string{"manufacturer_id", "manufacturer_name", "address", "email", "phone_no", "country"},
		Required: []string{"manufacturer_name", "address", "email", "phone_no", "country"},
		OrderBy:  "manufacturer_id",
	},
	"product": {
		Entity:   "product",
		Table:    "product",
		Columns:  []string{"product_id", "product_name", "weight_gm", "points_offered", "description", "category_id", "manufacturer_id"},
		Required: []string{"product_name", "weight_gm"},
		OrderBy:  "product_id",
	},
	"product_lot": {
		Entity:         "product_lot",
		Table:          "product_lot",
		ServerAssigned: "product_lot_id",
		Columns:        []string{"product_id", "manufacture_date", "expiry_date", "price", "discount"},
		Required:       []string{"product_id", "manufacture_date", "expiry_date", "price"},
		OrderBy:        "product_lot_id",
	},
	"store_product": {
		Entity:   "store_product",
		Table:    "store_product",
		Columns:  []string{"store_id", "product_lot_id", "in_stock"},
		Required: []string{"store_id", "product_lot_id"},
		OrderBy:  "store_id, product_lot_id",
	},
	"customer": {
		Entity:   "customer",
		Table:    "customer",
		Columns:  []string{"customer_id", "customer_name", "gender", "address", "email", "phone_no", "points_collected"},
		Required: []string{"customer_name", "gender", "address", "email", "phone_no"},
		OrderBy:  "customer_id",
	},
	"bill": {
		Entity:         "bill",
		Table:          "bill",
		ServerAssigned: "bill_id",
		Columns:        []string{"date", "customer_id", "store_id"},
		Required:       []string{"date"},
		OrderBy:        "bill_id",
	},
	"product_bill": {
		Entity:  "product_bill",
		Table:   "product_bill",
		Columns: []string{"bill_id", "product_lot_id", "quantity"},
		OrderBy: "bill_id, product_lot_id",
	},
}

// InsertableTables lists the entities served by POST /api/insert_<entity>.
var InsertableTables = []string{
	"customer", "store", "manufacturer", "product",
	"category", "bill", "store_product", "product_lot",
}

// ListableTables lists the entities served by GET /api/<entity>/.
var ListableTables = []string{
	"store", "product", "product_lot", "store_product",
	"category", "customer", "manufacturer", "bill", "product_bill",
}
