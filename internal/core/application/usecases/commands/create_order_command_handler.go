package commands

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/order"
)

// CreateDraftOrderCommandHandler opens an empty Draft order for an existing buyer.
// It is the only path that produces non-completed orders.
type CreateDraftOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDraftOrderCommandHandler requires a UoWFactory, since the buyer is
// checked in the same transaction that writes the order.
func NewCreateDraftOrderCommandHandler(uowFactory UoWFactory) CreateDraftOrderCommandHandler {
	return CreateDraftOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the draft order and returns it.
func (h CreateDraftOrderCommandHandler) Handle(ctx context.Context, cmd CreateDraftOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.BuyerRepository().Get(ctx, cmd.BuyerID()); err != nil {
		return nil, err
	}

	draft, err := order.NewDraftOrder(cmd.OrderID(), cmd.BuyerID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, draft); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return draft, nil
}
