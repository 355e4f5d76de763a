package commands

import (
	"errors"

	"checkout/internal/pkg/guard"
)

var ErrRegisterBuyerCommandIsNotConstructed = errors.New(
	"RegisterBuyerCommand must be created via NewRegisterBuyerCommand constructor",
)

// RegisterBuyerCommand creates a buyer account. Email and password are
// validated by the handler so both problems are reported together.
type RegisterBuyerCommand struct {
	email     string
	password  string
	firstName string
	lastName  string

	guard guard.ConstructorGuard
}

func NewRegisterBuyerCommand(email, password, firstName, lastName string) RegisterBuyerCommand {
	return RegisterBuyerCommand{
		email:     email,
		password:  password,
		firstName: firstName,
		lastName:  lastName,
		guard:     guard.NewConstructorGuard(),
	}
}

func (c RegisterBuyerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterBuyerCommandIsNotConstructed)
}

func (c RegisterBuyerCommand) Email() string     { return c.email }
func (c RegisterBuyerCommand) Password() string  { return c.password }
func (c RegisterBuyerCommand) FirstName() string { return c.firstName }
func (c RegisterBuyerCommand) LastName() string  { return c.lastName }
