package queries

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersWithoutReceiptQueryHandler feeds the receipt backfill job.
type GetOrdersWithoutReceiptQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersWithoutReceiptQueryHandler(db *gorm.DB) GetOrdersWithoutReceiptQueryHandler {
	return GetOrdersWithoutReceiptQueryHandler{db: db}
}

// Handle returns at most query.Limit() orders. Orders that were never tried
// come first, oldest first; orders whose last attempt failed follow, least
// recently tried first. A batch of orders that keep failing therefore cannot
// hide newer ones.
func (h GetOrdersWithoutReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersWithoutReceiptQuery,
) ([]OrderWithoutReceipt, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]OrderWithoutReceipt, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			created_at
		FROM orders
		WHERE status = ? AND receipt_path IS NULL
		ORDER BY receipt_attempted_at ASC NULLS FIRST, created_at, id
		LIMIT ?
	`, int(order.Completed), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, buyerID uuid.UUID
			createdAt   time.Time
		)
		if err = rows.Scan(&id, &buyerID, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(buyerID[:])
		if idErr != nil {
			return nil, idErr
		}
		result = append(result, OrderWithoutReceipt{ID: orderID, BuyerID: ownerID, CreatedAt: createdAt.UTC()})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
