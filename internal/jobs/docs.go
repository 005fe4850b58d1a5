// Package jobs provides scheduled background tasks.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// MarketplaceSyncJob runs the marketplace polling cycle on a configurable
// schedule: it authenticates each active establishment, reconciles the
// storefront with remaining stock, and imports or auto-rejects the pending
// orders.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(syncHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sync job treats an overlapping cycle as a benign skip; every other
// failure is logged and retried on the next tick.
package jobs
