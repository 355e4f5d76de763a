package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var ErrGenerateReceiptCommandIsNotConstructed = errors.New(
	"GenerateReceiptCommand must be created via NewGenerateReceiptCommand constructor",
)

// GenerateReceiptCommand asks for the receipt of a completed order to be
// (re)rendered. It is the retry hook for receipts that failed after checkout.
type GenerateReceiptCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGenerateReceiptCommand(orderID kernel.UUID) (GenerateReceiptCommand, error) {
	if err := orderID.Validate(); err != nil {
		return GenerateReceiptCommand{}, err
	}
	return GenerateReceiptCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c GenerateReceiptCommand) Validate() error {
	return c.guard.Validate(ErrGenerateReceiptCommandIsNotConstructed)
}

func (c GenerateReceiptCommand) OrderID() kernel.UUID {
	return c.orderID
}
