package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its line items with raw SQL.
// The total is re-derived from the line items and the shipping cost and must
// match the stored total; a mismatch is returned as order.ErrTotalMismatch.
// An order of another buyer is reported as not found.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}
	db := h.db.WithContext(ctx)

	var (
		view         OrderView
		status       int
		methodName   *string
		shippingCost decimal.Decimal
		total        decimal.Decimal
		createdAt    time.Time
		updatedAt    time.Time
	)
	row := db.Raw(`
		SELECT
			status,
			shipping_method_name,
			shipping_cost,
			total,
			receipt_path,
			created_at,
			updated_at
		FROM orders
		WHERE id = ? AND buyer_id = ?
	`, query.OrderID().Bytes(), query.BuyerID().Bytes()).Row()
	if err := row.Scan(&status, &methodName, &shippingCost, &total, &view.ReceiptPath, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderView{}, err
	}

	view.ID = query.OrderID()
	view.Status = order.Status(status)
	view.CreatedAt = createdAt.UTC()
	view.UpdatedAt = updatedAt.UTC()
	if methodName != nil {
		view.ShippingMethod = *methodName
	}

	items, subtotal, err := h.lineItems(db, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	view.Items = items
	view.Subtotal = subtotal

	if view.ShippingCost, err = kernel.NewMoney(shippingCost); err != nil {
		return OrderView{}, err
	}
	if view.Total, err = kernel.NewMoney(total); err != nil {
		return OrderView{}, err
	}

	derived := subtotal.Add(view.ShippingCost)
	if !derived.IsEqual(view.Total) {
		return OrderView{}, fmt.Errorf("order %s: %w: stored %s, derived %s",
			query.OrderID(), order.ErrTotalMismatch, view.Total, derived)
	}
	return view, nil
}

func (h GetOrderQueryHandler) lineItems(db *gorm.DB, orderID kernel.UUID) ([]LineItemView, kernel.Money, error) {
	rows, err := db.Raw(`
		SELECT
			product_id,
			product_name,
			unit_price,
			quantity
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, kernel.Money{}, err
	}
	defer rows.Close()

	items := make([]LineItemView, 0)
	subtotal := kernel.ZeroMoney()
	for rows.Next() {
		var (
			item      LineItemView
			unitPrice decimal.Decimal
		)
		if err = rows.Scan(&item.ProductID, &item.ProductName, &unitPrice, &item.Quantity); err != nil {
			return nil, kernel.Money{}, err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, kernel.Money{}, err
		}
		item.Subtotal = item.UnitPrice.Times(item.Quantity)
		subtotal = subtotal.Add(item.Subtotal)
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, kernel.Money{}, err
	}
	return items, subtotal, nil
}
