package postgres

import (
	"context"

	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/domain/repository"
	"storemgr/internal/domain/schema"

	"gorm.io/gorm"
)

// gormTableRepository is the single data-access routine behind every
// insert and listing endpoint. The descriptor carries the table name and
// ordering, so no per-entity code is needed here.
type gormTableRepository struct {
	db *gorm.DB
}

// NewTableRepository is the constructor for gormTableRepository.
func NewTableRepository(db *gorm.DB) repository.TableRepository {
	return &gormTableRepository{db: db}
}

// Insert writes one row into the descriptor's table. Rows travel as
// column->value maps straight from the request body, so the database
// enforces types and constraints.
func (r *gormTableRepository) Insert(ctx context.Context, desc schema.Descriptor, row map[string]any) error {
	if err := r.db.WithContext(ctx).Table(desc.Table).Create(row).Error; err != nil {
		return translateConstraintError(err)
	}

	return nil
}

// List dumps the whole table in the descriptor's order.
func (r *gormTableRepository) List(ctx context.Context, desc schema.Descriptor) ([]map[string]any, error) {
	query := r.db.WithContext(ctx).Table(desc.Table)
	if desc.OrderBy != "" {
		query = query.Order(desc.OrderBy)
	}

	var rows []map[string]any
	if err := query.Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list "+desc.Table)
	}

	return rows, nil
}

// translateConstraintError maps database constraint violations onto the
// domain error taxonomy. Anything unrecognized becomes a generic invalid
// input error with the cause kept in details.
func translateConstraintError(err error) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrDuplicateValue
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrInvalidForeignKey
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	default:
		return domainerrors.NewDatabaseExecuteError(err, "invalid input")
	}
}
