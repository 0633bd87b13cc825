package jobs

import (
	"fmt"
	"log/slog"

	"netondemand/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderProcessingJob            *OrderProcessingJob
	bandwidthChangeApplicationJob *BandwidthChangeApplicationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	processOrdersHandler commands.ProcessOrdersCommandHandler,
	applyScheduledChangesHandler commands.ApplyScheduledChangesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderProcessingJob:            NewOrderProcessingJob(processOrdersHandler, logger),
		bandwidthChangeApplicationJob: NewBandwidthChangeApplicationJob(applyScheduledChangesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderProcessingJob.Start(); err != nil {
		return fmt.Errorf("failed to start order processing job: %w", err)
	}

	if err := jm.bandwidthChangeApplicationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderProcessingJob.Stop()
		return fmt.Errorf("failed to start bandwidth change application job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.bandwidthChangeApplicationJob.Stop()
	jm.orderProcessingJob.Stop()
}
