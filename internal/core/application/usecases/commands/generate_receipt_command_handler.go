package commands

import (
	"context"
	"log/slog"

	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

// GenerateReceiptCommandHandler renders the receipt of an existing completed
// order and stores its path. Re-running it for an order that already has a
// receipt overwrites the file at the same path and leaves the order unchanged.
// A failed attempt is stamped on the order, which sends it to the back of the
// backfill queue.
type GenerateReceiptCommandHandler struct {
	uowFactory UoWFactory
	receipts   receiptIssuer
}

func NewGenerateReceiptCommandHandler(
	uowFactory UoWFactory,
	orderUoWFactory OrderUoWFactory,
	generator ports.ReceiptGenerator,
	metrics Metrics,
	logger *slog.Logger,
) (GenerateReceiptCommandHandler, error) {
	if uowFactory == nil {
		return GenerateReceiptCommandHandler{}, errs.NewValueIsRequiredError("unit of work factory")
	}
	if logger == nil {
		return GenerateReceiptCommandHandler{}, errs.NewValueIsRequiredError("logger")
	}
	receipts, err := newReceiptIssuer(orderUoWFactory, generator, metrics, logger.With("component", "receipts"))
	if err != nil {
		return GenerateReceiptCommandHandler{}, err
	}
	return GenerateReceiptCommandHandler{uowFactory: uowFactory, receipts: receipts}, nil
}

// Handle returns the storage-relative path of the rendered receipt.
// Draft orders are rejected with errs.ErrValueIsInvalid.
func (h GenerateReceiptCommandHandler) Handle(ctx context.Context, cmd GenerateReceiptCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	o, b, err := h.load(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}
	if o.Status() != order.Completed {
		return "", errs.NewValueIsInvalidError("order is not completed")
	}

	path, err := h.receipts.issue(ctx, o, b)
	if err != nil {
		h.receipts.markAttempt(ctx, o)
		return "", err
	}
	return path, nil
}

// load reads the order and its buyer, releasing the transaction before rendering.
func (h GenerateReceiptCommandHandler) load(ctx context.Context, orderID kernel.UUID) (*order.Order, *buyer.Buyer, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	b, err := uow.BuyerRepository().Get(ctx, o.BuyerID())
	if err != nil {
		return nil, nil, err
	}
	return o, b, nil
}
