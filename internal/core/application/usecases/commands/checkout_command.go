package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/services"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutAddress is the delivery address as submitted by the buyer.
type CheckoutAddress struct {
	Street     string
	PostalCode string
	Commune    string
	City       string
}

// SubmittedPrice is the unit price a client sent for a product. It must be
// positive and is never used for pricing.
type SubmittedPrice struct {
	ProductID int64
	Price     decimal.Decimal
}

// CheckoutInput carries the raw checkout request. Identity fields and
// submitted prices are validated by the handler so that every field error is
// reported together.
type CheckoutInput struct {
	NationalID       string
	Email            string
	Phone            string
	Address          CheckoutAddress
	ShippingMethodID int64
	Lines            []services.CartLine
	SubmittedPrices  []SubmittedPrice
}

// CheckoutCommand represents a buyer turning a cart into a completed order.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(buyerID, CheckoutInput{
//	    NationalID:       "12.345.678-5",
//	    Email:            "ana@example.com",
//	    Phone:            "987654321",
//	    Address:          CheckoutAddress{Street: "Av. Grecia 1", Commune: "Ñuñoa", City: "Santiago"},
//	    ShippingMethodID: 2,
//	    Lines:            []services.CartLine{{ProductID: 1, Quantity: 2}},
//	})
type CheckoutCommand struct {
	buyerID kernel.UUID
	input   CheckoutInput

	guard guard.ConstructorGuard
}

// NewCheckoutCommand only checks the buyer reference; the content of input is
// validated during checkout.
func NewCheckoutCommand(buyerID kernel.UUID, input CheckoutInput) (CheckoutCommand, error) {
	if err := buyerID.Validate(); err != nil {
		return CheckoutCommand{}, errs.NewValueIsRequiredErrorWithCause("buyer id", err)
	}

	input.Lines = append([]services.CartLine(nil), input.Lines...)
	input.SubmittedPrices = append([]SubmittedPrice(nil), input.SubmittedPrices...)
	return CheckoutCommand{
		buyerID: buyerID,
		input:   input,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c CheckoutCommand) NationalID() string {
	return c.input.NationalID
}

func (c CheckoutCommand) Email() string {
	return c.input.Email
}

func (c CheckoutCommand) Phone() string {
	return c.input.Phone
}

func (c CheckoutCommand) Address() CheckoutAddress {
	return c.input.Address
}

func (c CheckoutCommand) ShippingMethodID() int64 {
	return c.input.ShippingMethodID
}

// SubmittedPrices returns a copy of the client-side prices.
func (c CheckoutCommand) SubmittedPrices() []SubmittedPrice {
	return append([]SubmittedPrice(nil), c.input.SubmittedPrices...)
}

// Lines returns a copy of the requested cart lines.
func (c CheckoutCommand) Lines() []services.CartLine {
	return append([]services.CartLine(nil), c.input.Lines...)
}
