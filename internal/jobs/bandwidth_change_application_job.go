package jobs

import (
	"context"
	"log/slog"

	"netondemand/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BandwidthChangeApplicationJob manages the scheduled application of
// bandwidth changes. Runs every minute to apply changes whose scheduled
// time has come due.
type BandwidthChangeApplicationJob struct {
	handler commands.ApplyScheduledChangesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBandwidthChangeApplicationJob creates a new job for applying due bandwidth changes.
func NewBandwidthChangeApplicationJob(
	handler commands.ApplyScheduledChangesCommandHandler,
	logger *slog.Logger,
) *BandwidthChangeApplicationJob {
	return &BandwidthChangeApplicationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "bandwidth_change_application_job"),
	}
}

// Start begins the bandwidth change application job to run every minute.
func (j *BandwidthChangeApplicationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewApplyScheduledChangesCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to create apply scheduled changes command", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Bandwidth change application job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Bandwidth change application job started (running every minute)")
	return nil
}

// Stop stops the bandwidth change application job.
func (j *BandwidthChangeApplicationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Bandwidth change application job stopped")
}
