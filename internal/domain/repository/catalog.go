// Package repository defines the persistence interfaces the domain layer
// depends on. Concrete implementations live under internal/infra.
package repository

import (
	"context"

	"storemgr/internal/domain/schema"
)

// TableRepository is the generic data-access routine behind every
// insert_<entity> and <entity>/ listing endpoint. Rows travel as flat
// column->value maps so one implementation serves every descriptor.
type TableRepository interface {
	// Insert writes one row. Constraint violations come back as the
	// domain's DuplicateValue / InvalidForeignKey / InvalidInput errors.
	Insert(ctx context.Context, desc schema.Descriptor, row map[string]any) error
	// List dumps the whole table in the descriptor's order.
	List(ctx context.Context, desc schema.Descriptor) ([]map[string]any, error)
}
