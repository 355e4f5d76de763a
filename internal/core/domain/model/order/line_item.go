package order

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// LineItem is a product entry frozen into an order: name, unit price and
// attributes are copies taken from the catalog at the time it was priced.
type LineItem struct {
	id          kernel.UUID
	productID   int64
	productName string
	unitPrice   kernel.Money
	quantity    int
	attributes  map[string]any
}

// NewLineItem validates and builds a line item. quantity must be at least 1.
func NewLineItem(
	id kernel.UUID,
	productID int64,
	productName string,
	unitPrice kernel.Money,
	quantity int,
	attributes map[string]any,
) (LineItem, error) {
	var errList []error
	errList = append(errList, id.Validate(), unitPrice.Validate())
	if strings.TrimSpace(productName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product name"))
	}
	if quantity < 1 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:          id,
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
		attributes:  maps.Clone(attributes),
	}, nil
}

func (li LineItem) ID() kernel.UUID {
	return li.id
}

// ProductID is the catalog id the item was priced from. It is kept for
// reference only; name and price never follow later catalog changes.
func (li LineItem) ProductID() int64 {
	return li.productID
}

func (li LineItem) ProductName() string {
	return li.productName
}

func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

func (li LineItem) Quantity() int {
	return li.quantity
}

// Attributes returns a copy of the frozen product attributes.
func (li LineItem) Attributes() map[string]any {
	return maps.Clone(li.attributes)
}

// Subtotal is unit price × quantity.
func (li LineItem) Subtotal() kernel.Money {
	return li.unitPrice.Times(li.quantity)
}

// SumLineItems returns Σ(unit price × quantity).
func SumLineItems(items []LineItem) kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}
