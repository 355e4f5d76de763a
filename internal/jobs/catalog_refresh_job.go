package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

type catalogReloader interface {
	Reload(ctx context.Context) error
}

// CatalogRefreshJob re-reads the catalog snapshot on a schedule. A failed
// reload keeps serving the previous snapshot.
type CatalogRefreshJob struct {
	catalog  catalogReloader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewCatalogRefreshJob(catalog catalogReloader, schedule string, logger *slog.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		catalog:  catalog,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "catalog_refresh_job"),
	}
}

func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.catalog.Reload(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Catalog refresh failed, keeping previous snapshot", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

func (j *CatalogRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
