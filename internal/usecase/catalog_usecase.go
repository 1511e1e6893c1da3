package usecase

import (
	"context"
)

// TableDump is the payload of a full-table listing.
type TableDump struct {
	NumRecords int              `json:"num_records"`
	Records    []map[string]any `json:"records"`
}

// CatalogUsecase is the generic insert/list routine behind every entity
// endpoint. The entity name selects a table descriptor; one
// implementation serves all tables.
type CatalogUsecase interface {
	// Insert validates the flat column->value body against the entity's
	// descriptor and writes one row. It returns the entity label for the
	// success message.
	Insert(ctx context.Context, entityName string, body map[string]any) (string, error)

	// List dumps the entity's table in its natural key order.
	List(ctx context.Context, entityName string) (*TableDump, error)
}
