// Package jobs provides scheduled background tasks for the order backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PurgeDeletedOrdersJob - Runs nightly to hard-delete orders that stayed
// soft-deleted past the retention window. Their line items go with them
// through the cascade on the foreign key.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeHandler, 30*24*time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing purge run is logged and retried on the next schedule; each run
// is one transaction scope, so a failure leaves nothing half-purged.
package jobs
