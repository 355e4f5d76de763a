package commands

import (
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var ErrAddLineItemCommandIsNotConstructed = errors.New(
	"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
)

// AddLineItemCommand appends a catalog product to a buyer's draft order. No
// price is accepted: the item is priced from the catalog.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	buyerID   kernel.UUID
	productID int64
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddLineItemCommand(orderID, buyerID kernel.UUID, productID int64, quantity int) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

func (c AddLineItemCommand) OrderID() kernel.UUID { return c.orderID }
func (c AddLineItemCommand) BuyerID() kernel.UUID { return c.buyerID }
func (c AddLineItemCommand) ProductID() int64     { return c.productID }
func (c AddLineItemCommand) Quantity() int        { return c.quantity }

func (c *AddLineItemCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AddLineItemCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.buyerID = id
	return nil
}

func (c *AddLineItemCommand) setProductID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("producto_id", fmt.Errorf("%d is not greater than 0", id))
	}
	c.productID = id
	return nil
}

func (c *AddLineItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("cantidad", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
