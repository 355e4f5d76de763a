package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

// receiptIssuer renders a receipt and records its path in a short transaction
// of its own. It never runs inside the transaction that committed the order.
type receiptIssuer struct {
	uowFactory OrderUoWFactory
	generator  ports.ReceiptGenerator
	metrics    Metrics
	logger     *slog.Logger
}

func newReceiptIssuer(
	uowFactory OrderUoWFactory,
	generator ports.ReceiptGenerator,
	metrics Metrics,
	logger *slog.Logger,
) (receiptIssuer, error) {
	switch {
	case uowFactory == nil:
		return receiptIssuer{}, errs.NewValueIsRequiredError("order unit of work factory")
	case generator == nil:
		return receiptIssuer{}, errs.NewValueIsRequiredError("receipt generator")
	case metrics == nil:
		return receiptIssuer{}, errs.NewValueIsRequiredError("metrics")
	case logger == nil:
		return receiptIssuer{}, errs.NewValueIsRequiredError("logger")
	}
	return receiptIssuer{uowFactory: uowFactory, generator: generator, metrics: metrics, logger: logger}, nil
}

// issue renders the receipt of o and stores the returned path on the order.
// Only receipt_path and updated_at are written.
func (i receiptIssuer) issue(ctx context.Context, o *order.Order, b *buyer.Buyer) (string, error) {
	path, err := i.generator.Generate(ctx, o, b)
	if err != nil {
		i.metrics.ObserveReceipt(OutcomeFailed)
		return "", fmt.Errorf("render receipt for order %s: %w", o.ID(), err)
	}

	if err = i.record(ctx, o, path); err != nil {
		i.metrics.ObserveReceipt(OutcomeFailed)
		return "", fmt.Errorf("record receipt path for order %s: %w", o.ID(), err)
	}

	i.metrics.ObserveReceipt(OutcomeGenerated)
	i.logger.InfoContext(ctx, "Receipt generated", "order_id", o.ID().String(), "path", path)
	return path, nil
}

// record persists path on a copy of o and applies it to o only once the
// transaction has committed, so a failed write leaves o without a path.
func (i receiptIssuer) record(ctx context.Context, o *order.Order, path string) error {
	staged := o.Clone()
	if err := staged.SetReceiptPath(path, time.Now()); err != nil {
		return err
	}

	uow := i.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().UpdateReceiptPath(ctx, staged); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return o.SetReceiptPath(path, staged.UpdatedAt())
}

// markAttempt stamps a failed receipt attempt on the order so the backfill
// moves on to orders it has not tried yet. Failures are only logged.
func (i receiptIssuer) markAttempt(ctx context.Context, o *order.Order) {
	if err := i.stampAttempt(ctx, o); err != nil {
		i.logger.WarnContext(ctx, "Could not record receipt attempt", "order_id", o.ID().String(), "error", err)
	}
}

func (i receiptIssuer) stampAttempt(ctx context.Context, o *order.Order) error {
	uow := i.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().MarkReceiptAttempt(ctx, o.ID(), time.Now()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
