// Package jobs provides scheduled background tasks for the portal backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations required for order fulfilment and the
// bandwidth-change workflow.
//
// # Available Jobs
//
// 1. OrderProcessingJob - Runs every minute to advance submitted and in-flight orders through fulfilment
// 2. BandwidthChangeApplicationJob - Runs every minute to apply scheduled bandwidth changes that have come due
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(processOrdersHandler, applyScheduledChangesHandler, logger)
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
// Both jobs use the cron expression "0 * * * * *" which means they run at the
// top of every minute. Fulfilment deadlines and change schedules are expressed
// in hours and days, so minute-level granularity is more than sufficient.
//
// # Error Handling
//
// - Both jobs log all errors, as their handlers treat an empty work queue as success
// - Failed job starts will stop any already running jobs
package jobs
