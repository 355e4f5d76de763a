package ports

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order aggregate.
// An order and its line items are always written in the transaction the
// repository is bound to.
type OrderRepository interface {
	// Add persists a new order together with all of its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its line items. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row-level lock on the order row held until the
	// transaction ends. Concurrent appends to the same order serialize on it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AppendLineItem inserts item and rewrites the stored total and updated_at
	// from aggregate, which must already contain item.
	AppendLineItem(ctx context.Context, aggregate *order.Order, item order.LineItem) error

	// UpdateReceiptPath writes receipt_path and updated_at only. Monetary
	// columns and line items are never touched.
	UpdateReceiptPath(ctx context.Context, aggregate *order.Order) error

	// MarkReceiptAttempt stores the time of the last failed receipt attempt.
	// The aggregate is not loaded and updated_at is left alone.
	MarkReceiptAttempt(ctx context.Context, id kernel.UUID, at time.Time) error

	// Delete removes the line items of the order, then the order itself.
	Delete(ctx context.Context, id kernel.UUID) error
}
