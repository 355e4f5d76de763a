package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type (
	ordersWithoutReceiptLister interface {
		Handle(ctx context.Context, query queries.GetOrdersWithoutReceiptQuery) ([]queries.OrderWithoutReceipt, error)
	}
	receiptGenerator interface {
		Handle(ctx context.Context, cmd commands.GenerateReceiptCommand) (string, error)
	}
)

// ReceiptBackfillJob retries receipts that could not be produced at checkout.
// Each run handles at most batchSize orders, untried ones first. A run is skipped
// while the previous one is still going.
type ReceiptBackfillJob struct {
	lister    ordersWithoutReceiptLister
	generator receiptGenerator
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewReceiptBackfillJob(
	lister ordersWithoutReceiptLister,
	generator receiptGenerator,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *ReceiptBackfillJob {
	return &ReceiptBackfillJob{
		lister:    lister,
		generator: generator,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "receipt_backfill_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *ReceiptBackfillJob) Start() error {
	query, err := queries.NewGetOrdersWithoutReceiptQuery(j.batchSize)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, _, runErr := j.RunOnce(ctx, query); runErr != nil {
			j.logger.ErrorContext(ctx, "Receipt backfill job failed", "error", runErr)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Receipt backfill job started",
		"schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// RunOnce processes one batch. A failing order is logged and skipped; the
// returned error is reserved for listing failures and cancellation.
func (j *ReceiptBackfillJob) RunOnce(
	ctx context.Context,
	query queries.GetOrdersWithoutReceiptQuery,
) (generated, failed int, err error) {
	pending, err := j.lister.Handle(ctx, query)
	if err != nil {
		return 0, 0, fmt.Errorf("list orders without receipt: %w", err)
	}

	for _, o := range pending {
		if err = ctx.Err(); err != nil {
			return generated, failed, err
		}

		cmd, cmdErr := commands.NewGenerateReceiptCommand(o.ID)
		if cmdErr != nil {
			failed++
			continue
		}
		if _, genErr := j.generator.Handle(ctx, cmd); genErr != nil {
			failed++
			j.logger.WarnContext(ctx, "Receipt still unavailable", "order_id", o.ID.String(), "error", genErr)
			continue
		}
		generated++
	}

	if len(pending) > 0 {
		j.logger.InfoContext(ctx, "Receipt backfill finished", "generated", generated, "failed", failed)
	}
	return generated, failed, nil
}

// Stop stops the scheduler and waits for a running batch to finish.
func (j *ReceiptBackfillJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Receipt backfill job stopped")
}
