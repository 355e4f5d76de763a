package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/credential"
	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

// PasswordField is the field key for password policy errors.
const PasswordField = "password"

// RegisterBuyerCommandHandler validates the credentials, hashes the password
// and stores a new buyer. Issuing tokens is left to the authentication service.
type RegisterBuyerCommandHandler struct {
	uowFactory BuyerUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterBuyerCommandHandler(uowFactory BuyerUoWFactory, hasher ports.PasswordHasher) RegisterBuyerCommandHandler {
	return RegisterBuyerCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

func (h RegisterBuyerCommandHandler) Handle(ctx context.Context, cmd RegisterBuyerCommand) (*buyer.Buyer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var fieldErrs errs.FieldErrors
	email, err := identity.ParseEmail(cmd.Email())
	fieldErrs.Add(EmailField, err)
	fieldErrs.Add(PasswordField, credential.ValidatePassword(cmd.Password()))
	if err = fieldErrs.ErrOrNil(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	b, err := buyer.NewBuyer(kernel.NewUUID(), email, cmd.FirstName(), cmd.LastName(), hash, time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BuyerRepository()
	_, err = repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errs.NewValueIsNotUniqueError(EmailField, email.String())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = repo.Add(ctx, b); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return b, nil
}
