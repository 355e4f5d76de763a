package ports

import (
	"context"

	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/order"
)

// ReceiptGenerator renders the receipt of a committed order and returns its
// storage-relative path. Rendering the same order twice writes the same path.
type ReceiptGenerator interface {
	Generate(ctx context.Context, o *order.Order, b *buyer.Buyer) (string, error)
}
