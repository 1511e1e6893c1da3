package usecase

import (
	"context"

	"storemgr/internal/domain/entity"
)

// LineItemInput is the body of a sell-product request: which bill the
// sale belongs to, which lot is sold, and how many units.
type LineItemInput struct {
	BillID       int64 `json:"bill_id" validate:"required"`
	ProductLotID int64 `json:"product_lot_id" validate:"required"`
	Quantity     int64 `json:"quantity" validate:"required,min=1"`
}

// LedgerUsecase records sales against store inventory. Recording a line
// item is the only operation that mutates more than one table, so it is
// the only one that runs inside an explicit transaction.
type LedgerUsecase interface {
	// RecordLineItem validates the referenced bill and stock, inserts the
	// product_bill line, decrements in_stock and credits loyalty points,
	// all inside one transaction.
	RecordLineItem(ctx context.Context, input *LineItemInput) (*entity.ProductBill, error)
}
