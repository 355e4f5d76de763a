package queries

import (
	"errors"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

// MaxOrdersWithoutReceipt bounds a single backfill batch.
const MaxOrdersWithoutReceipt = 500

var ErrGetOrdersWithoutReceiptQueryIsNotConstructed = errors.New(
	"GetOrdersWithoutReceiptQuery must be created via NewGetOrdersWithoutReceiptQuery constructor",
)

// GetOrdersWithoutReceiptQuery lists completed orders whose receipt was never
// recorded, oldest first.
type GetOrdersWithoutReceiptQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewGetOrdersWithoutReceiptQuery accepts a limit in [1, MaxOrdersWithoutReceipt].
func NewGetOrdersWithoutReceiptQuery(limit int) (GetOrdersWithoutReceiptQuery, error) {
	if limit < 1 || limit > MaxOrdersWithoutReceipt {
		return GetOrdersWithoutReceiptQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrdersWithoutReceipt)
	}
	return GetOrdersWithoutReceiptQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersWithoutReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersWithoutReceiptQueryIsNotConstructed)
}

func (q GetOrdersWithoutReceiptQuery) Limit() int { return q.limit }

// OrderWithoutReceipt identifies an order awaiting its receipt.
type OrderWithoutReceipt struct {
	ID        kernel.UUID
	BuyerID   kernel.UUID
	CreatedAt time.Time
}
