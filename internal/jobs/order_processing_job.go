package jobs

import (
	"context"
	"log/slog"

	"netondemand/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderProcessingJob manages the scheduled advancement of orders through
// fulfilment. Runs every minute to approve submitted orders, start work on
// approved ones and complete those whose completion date has arrived.
type OrderProcessingJob struct {
	handler commands.ProcessOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderProcessingJob creates a new job for processing orders.
// Uses ProcessOrdersCommandHandler to sweep the order backlog every minute.
func NewOrderProcessingJob(handler commands.ProcessOrdersCommandHandler, logger *slog.Logger) *OrderProcessingJob {
	return &OrderProcessingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_processing_job"),
	}
}

// Start begins the order processing job to run every minute.
func (j *OrderProcessingJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewProcessOrdersCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to create process orders command", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order processing job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order processing job started (running every minute)")
	return nil
}

// Stop stops the order processing job.
func (j *OrderProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order processing job stopped")
}
