// Package jobs provides scheduled background tasks for the checkout service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds).
//
// # Available Jobs
//
// 1. ReceiptBackfillJob - renders receipts for completed orders whose receipt
// failed at checkout, in bounded batches, oldest first
// 2. CatalogRefreshJob - reloads the product and shipping snapshots
//
// # Usage
//
//	backfill := jobs.NewReceiptBackfillJob(listHandler, generateHandler, "0 */5 * * * *", 50, logger)
//	refresh := jobs.NewCatalogRefreshJob(fileCatalog, "0 0 * * * *", logger)
//	jobManager := jobs.NewJobManager(backfill, refresh)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A receipt that still fails is logged at warn level and retried on the next run
// - A failed catalog reload is logged and the previous snapshot stays in use
// - Failed job starts will stop any already running jobs
package jobs
