package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// one of the package constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewCompletedOrder, NewDraftOrder or RestoreOrder")

	// ErrEmptyOrder is returned when a completed order is built without line items.
	ErrEmptyOrder = errors.New("completed order must have at least one line item")

	// ErrTotalMismatch is returned when a stored total cannot be re-derived from
	// the line items and the shipping cost.
	ErrTotalMismatch = errors.New("total does not match line items plus shipping cost")

	// ErrReceiptPathAlreadySet is returned when a different receipt path is set twice.
	ErrReceiptPathAlreadySet = errors.New("receipt path is already set")
)

// Order is the aggregate root of the checkout pipeline: the order, its line
// items and the shipping snapshot taken at commit time.
//
// Order follows these invariants:
//   - total == Σ(unit price × quantity) + shipping cost, at construction, after
//     every append and on restore
//   - a completed order has at least one line item and a shipping snapshot
//   - line items can only be appended while the order is Draft
//   - the receipt path is the only field that changes after completion
type Order struct {
	id          kernel.UUID
	buyerID     kernel.UUID
	status      Status
	items       []LineItem
	shipping    *ShippingSnapshot
	total       kernel.Money
	receiptPath string
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// NewCompletedOrder builds the order checkout commits. The snapshot subtotal must
// equal the sum of the line items; total is derived, never supplied.
//
// Example:
//
//	snapshot, _ := order.NewShippingSnapshot(address, contact, 2, "Envío Estándar", "3-5 días hábiles", cost, subtotal)
//	o, err := order.NewCompletedOrder(kernel.NewUUID(), buyerID, items, snapshot, time.Now())
//	if err != nil {
//	    // items empty, or snapshot subtotal does not match the items
//	}
func NewCompletedOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	items []LineItem,
	shipping ShippingSnapshot,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), buyerID.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("line items", ErrEmptyOrder)
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}
	subtotal := SumLineItems(items)
	if !subtotal.IsEqual(shipping.Subtotal()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("snapshot subtotal %s differs from line items %s", shipping.Subtotal(), subtotal))
	}

	now = truncateTimestamp(now)
	return &Order{
		id:        id,
		buyerID:   buyerID,
		status:    Completed,
		items:     append([]LineItem(nil), items...),
		shipping:  &shipping,
		total:     subtotal.Add(shipping.Cost()),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewDraftOrder creates an empty Draft order with a zero total and no shipping snapshot.
func NewDraftOrder(id kernel.UUID, buyerID kernel.UUID, now time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), buyerID.Validate()); err != nil {
		return nil, err
	}

	now = truncateTimestamp(now)
	return &Order{
		id:        id,
		buyerID:   buyerID,
		status:    Draft,
		total:     kernel.ZeroMoney(),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// State carries persisted order fields into RestoreOrder.
type State struct {
	ID          kernel.UUID
	BuyerID     kernel.UUID
	Status      Status
	Items       []LineItem
	Shipping    *ShippingSnapshot
	Total       kernel.Money
	ReceiptPath string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestoreOrder rebuilds an order read from storage. The stored total must be
// re-derivable from the items and the shipping cost, otherwise ErrTotalMismatch
// is returned.
func RestoreOrder(s State) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.BuyerID.Validate(),
		s.Status.Validate(),
		s.Total.Validate(),
		validateItems(s.Items),
	); err != nil {
		return nil, err
	}
	if s.Status == Completed && s.Shipping == nil {
		return nil, errs.NewValueIsRequiredError("shipping snapshot")
	}

	o := &Order{
		id:          s.ID,
		buyerID:     s.BuyerID,
		status:      s.Status,
		items:       append([]LineItem(nil), s.Items...),
		shipping:    s.Shipping,
		total:       s.Total,
		receiptPath: s.ReceiptPath,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		guard:       guard.NewConstructorGuard(),
	}
	if derived := o.deriveTotal(); !derived.IsEqual(s.Total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%w: stored %s, derived %s", ErrTotalMismatch, s.Total, derived))
	}
	return o, nil
}

// Validate rejects orders that were not created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

func (o *Order) Status() Status {
	return o.status
}

// LineItems returns a copy of the items in insertion order.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Shipping returns the snapshot. Draft orders have none.
func (o *Order) Shipping() (ShippingSnapshot, bool) {
	if o.shipping == nil {
		return ShippingSnapshot{}, false
	}
	return *o.shipping, true
}

// Subtotal is Σ(unit price × quantity) over the current items.
func (o *Order) Subtotal() kernel.Money {
	return SumLineItems(o.items)
}

// ShippingCost is zero for orders without a snapshot.
func (o *Order) ShippingCost() kernel.Money {
	if o.shipping == nil {
		return kernel.ZeroMoney()
	}
	return o.shipping.Cost()
}

func (o *Order) Total() kernel.Money {
	return o.total
}

// ReceiptPath returns the storage-relative receipt path and whether it is set.
func (o *Order) ReceiptPath() (string, bool) {
	return o.receiptPath, o.receiptPath != ""
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AddLineItem appends item to a Draft order and recomputes the total from
// scratch. Completed orders reject the call and stay unchanged.
func (o *Order) AddLineItem(item LineItem, now time.Time) error {
	if err := o.status.ValidateAppend(); err != nil {
		return err
	}
	if err := validateItems([]LineItem{item}); err != nil {
		return err
	}
	for _, existing := range o.items {
		if existing.ID().IsEqual(item.ID()) {
			return errs.NewValueIsNotUniqueError("line item id", item.ID())
		}
	}

	o.items = append(o.items, item)
	o.total = o.deriveTotal()
	o.updatedAt = truncateTimestamp(now)
	return nil
}

// Clone returns a copy of o that can be changed without affecting o.
func (o *Order) Clone() *Order {
	c := *o
	c.items = append([]LineItem(nil), o.items...)
	return &c
}

// SetReceiptPath records where the receipt was stored. Only completed orders
// carry receipts. Setting the same path again is a no-op, so regeneration is
// safe to retry; setting a different one fails.
func (o *Order) SetReceiptPath(path string, now time.Time) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errs.NewValueIsRequiredError("receipt path")
	}
	if o.status != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to attach a receipt", o.status))
	}
	if o.receiptPath == path {
		return nil
	}
	if o.receiptPath != "" {
		return errs.NewValueIsInvalidErrorWithCause("receipt path", ErrReceiptPathAlreadySet)
	}

	o.receiptPath = path
	o.updatedAt = truncateTimestamp(now)
	return nil
}

func (o *Order) deriveTotal() kernel.Money {
	return SumLineItems(o.items).Add(o.ShippingCost())
}

func validateItems(items []LineItem) error {
	var errList []error
	for i, item := range items {
		if item.id.Validate() != nil || item.quantity < 1 || item.unitPrice.Validate() != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("line item",
				fmt.Errorf("item %d was not created via NewLineItem", i)))
		}
	}
	return errors.Join(errList...)
}

// truncateTimestamp matches the microsecond precision of the store.
func truncateTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
