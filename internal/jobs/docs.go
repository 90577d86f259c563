// Package jobs provides scheduled background tasks for the gateway.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the snapshot cache.
//
// # Available Jobs
//
// 1. SnapshotRefreshJob - Periodically re-syncs the épicerie's order list and
// driver pool from the marketplace into the local cache
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshHandler, epicerieID, token, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh schedule is configurable; the default "0 */5 * * * *" runs
// every five minutes. The cache is also refreshed on every confirmed user
// action, so the job only covers quiet periods.
//
// # Error Handling
//
// - Transport failures are routine: the cache keeps serving last-known state
// - Any other refresh failure is logged as an error
// - Failed job starts will stop any already running jobs
package jobs
