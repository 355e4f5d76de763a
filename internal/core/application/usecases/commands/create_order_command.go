package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var ErrCreateDraftOrderCommandIsNotConstructed = errors.New(
	"CreateDraftOrderCommand must be created via NewCreateDraftOrderCommand constructor",
)

// CreateDraftOrderCommand represents a request to open an empty draft order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateDraftOrderCommand(orderID, buyerID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateDraftOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateDraftOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDraftOrderCommand validates both identifiers.
func NewCreateDraftOrderCommand(orderID, buyerID kernel.UUID) (CreateDraftOrderCommand, error) {
	cmd := CreateDraftOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
	); err != nil {
		return CreateDraftOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDraftOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDraftOrderCommandIsNotConstructed)
}

func (c CreateDraftOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateDraftOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c *CreateDraftOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDraftOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}
