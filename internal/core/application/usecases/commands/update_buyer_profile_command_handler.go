package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/identity"
	"checkout/internal/pkg/errs"
)

// UpdateBuyerProfileCommandHandler normalizes national id and phone, enforces
// national id uniqueness across buyers and stores the profile.
type UpdateBuyerProfileCommandHandler struct {
	uowFactory BuyerUoWFactory
}

func NewUpdateBuyerProfileCommandHandler(uowFactory BuyerUoWFactory) UpdateBuyerProfileCommandHandler {
	return UpdateBuyerProfileCommandHandler{uowFactory: uowFactory}
}

// Handle returns *errs.FieldErrors when national id or phone are malformed,
// and errs.ValueIsNotUniqueError when another buyer already holds the national id.
func (h UpdateBuyerProfileCommandHandler) Handle(ctx context.Context, cmd UpdateBuyerProfileCommand) (*buyer.Buyer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	in := cmd.Input()
	var fieldErrs errs.FieldErrors
	var nationalID *identity.NationalID
	var phone *identity.Phone
	if strings.TrimSpace(in.NationalID) != "" {
		parsed, err := identity.ParseNationalID(in.NationalID)
		fieldErrs.Add(NationalIDField, err)
		nationalID = &parsed
	}
	if strings.TrimSpace(in.Phone) != "" {
		parsed, err := identity.ParsePhone(in.Phone)
		fieldErrs.Add(PhoneField, err)
		phone = &parsed
	}
	if err := fieldErrs.ErrOrNil(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BuyerRepository()
	b, err := repo.Get(ctx, cmd.BuyerID())
	if err != nil {
		return nil, err
	}

	if nationalID != nil {
		holder, findErr := repo.FindByNationalID(ctx, *nationalID)
		switch {
		case findErr == nil && !holder.ID().IsEqual(b.ID()):
			return nil, errs.NewValueIsNotUniqueError(NationalIDField, nationalID.String())
		case findErr != nil && !errors.Is(findErr, errs.ErrObjectNotFound):
			return nil, findErr
		}
	}

	b.UpdateProfile(in.FirstName, in.LastName, nationalID, phone, time.Now())
	if err = repo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return b, nil
}
