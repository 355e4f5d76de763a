package queries

import (
	"errors"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery reads one order owned by a buyer.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, buyerID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID
	buyerID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery requires both identifiers.
func NewGetOrderQuery(orderID, buyerID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := buyerID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("buyerID", err)
	}
	return GetOrderQuery{orderID: orderID, buyerID: buyerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) BuyerID() kernel.UUID { return q.buyerID }

// LineItemView is one frozen line of an order.
type LineItemView struct {
	ProductID   int64
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	Subtotal    kernel.Money
}

// OrderView is the read model returned by GetOrderQueryHandler.
// ShippingMethod is empty for draft orders.
type OrderView struct {
	ID             kernel.UUID
	Status         order.Status
	Items          []LineItemView
	ShippingMethod string
	Subtotal       kernel.Money
	ShippingCost   kernel.Money
	Total          kernel.Money
	ReceiptPath    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
