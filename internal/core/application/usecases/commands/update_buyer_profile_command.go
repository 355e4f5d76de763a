package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var ErrUpdateBuyerProfileCommandIsNotConstructed = errors.New(
	"UpdateBuyerProfileCommand must be created via NewUpdateBuyerProfileCommand constructor",
)

// ProfileInput holds the raw profile fields. Blank values leave the stored
// value unchanged.
type ProfileInput struct {
	FirstName  string
	LastName   string
	NationalID string
	Phone      string
}

// UpdateBuyerProfileCommand changes the contact details of a buyer.
type UpdateBuyerProfileCommand struct {
	buyerID kernel.UUID
	input   ProfileInput

	guard guard.ConstructorGuard
}

func NewUpdateBuyerProfileCommand(buyerID kernel.UUID, input ProfileInput) (UpdateBuyerProfileCommand, error) {
	if err := buyerID.Validate(); err != nil {
		return UpdateBuyerProfileCommand{}, err
	}
	return UpdateBuyerProfileCommand{buyerID: buyerID, input: input, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateBuyerProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBuyerProfileCommandIsNotConstructed)
}

func (c UpdateBuyerProfileCommand) BuyerID() kernel.UUID { return c.buyerID }
func (c UpdateBuyerProfileCommand) Input() ProfileInput  { return c.input }
