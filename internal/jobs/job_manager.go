package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// A nil job is skipped, which lets deployments disable it.
type JobManager struct {
	receiptBackfillJob *ReceiptBackfillJob
	catalogRefreshJob  *CatalogRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(receiptBackfillJob *ReceiptBackfillJob, catalogRefreshJob *CatalogRefreshJob) *JobManager {
	return &JobManager{
		receiptBackfillJob: receiptBackfillJob,
		catalogRefreshJob:  catalogRefreshJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.receiptBackfillJob != nil {
		if err := jm.receiptBackfillJob.Start(); err != nil {
			return fmt.Errorf("failed to start receipt backfill job: %w", err)
		}
	}

	if jm.catalogRefreshJob != nil {
		if err := jm.catalogRefreshJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			if jm.receiptBackfillJob != nil {
				jm.receiptBackfillJob.Stop()
			}
			return fmt.Errorf("failed to start catalog refresh job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.catalogRefreshJob != nil {
		jm.catalogRefreshJob.Stop()
	}
	if jm.receiptBackfillJob != nil {
		jm.receiptBackfillJob.Stop()
	}
}
