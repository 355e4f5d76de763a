package commands

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/domain/services"
	"checkout/internal/pkg/errs"
)

// AddLineItemCommandHandler appends a priced item to a draft order.
//
// The parent order row is locked with GetForUpdate before the total is
// recomputed, so two concurrent appends to the same order serialize instead of
// overwriting each other's total.
type AddLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingEngine
}

func NewAddLineItemCommandHandler(uowFactory OrderUoWFactory, pricing services.PricingEngine) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{uowFactory: uowFactory, pricing: pricing}
}

// Handle returns the updated order.
func (h AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	priced, err := h.pricing.PriceProduct(ctx, services.CartLine{ProductID: cmd.ProductID(), Quantity: cmd.Quantity()})
	if err != nil {
		return nil, err
	}
	item, err := newLineItem(priced)
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

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.BuyerID().IsEqual(cmd.BuyerID()) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if err = o.AddLineItem(item, time.Now()); err != nil {
		return nil, err
	}
	if err = repo.AppendLineItem(ctx, o, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
