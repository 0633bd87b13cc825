package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"netondemand/internal/pkg/errs"
)

// ApplyScheduledChangesCommandHandler applies every scheduled bandwidth
// change whose scheduled time has arrived. A change whose instance can no
// longer be adjusted, or whose value no longer fits the service's bounds, is
// marked failed instead of aborting the sweep.
type ApplyScheduledChangesCommandHandler struct {
	uowFactory ChangeUoWFactory
	logger     *slog.Logger
}

// NewApplyScheduledChangesCommandHandler creates a handler for the scheduled change sweep.
func NewApplyScheduledChangesCommandHandler(uowFactory ChangeUoWFactory) ApplyScheduledChangesCommandHandler {
	return ApplyScheduledChangesCommandHandler{
		uowFactory: uowFactory,
		logger:     slog.Default().With("component", "apply_scheduled_changes"),
	}
}

// Handle processes the scheduled change sweep.
func (h *ApplyScheduledChangesCommandHandler) Handle(
	ctx context.Context, cmd ApplyScheduledChangesCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	changeRepo := uow.BandwidthChangeRepository()
	due, err := changeRepo.GetAllScheduledBefore(ctx, now)
	if err != nil {
		return err
	}

	applied, failed := 0, 0
	for _, change := range due {
		err = applyChange(ctx, uow, change, now)
		switch {
		case err == nil:
			applied++
		case errors.Is(err, errs.ErrInvalidState) || errors.Is(err, errs.ErrBandwidthOutOfRange):
			h.logger.Warn("scheduled change cannot apply, marking failed",
				"change", change.ID(), "error", err)
			if err = change.Fail(); err != nil {
				return err
			}
			if err = changeRepo.Update(ctx, change); err != nil {
				return err
			}
			failed++
		default:
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if applied+failed > 0 {
		h.logger.Info("scheduled change sweep finished", "applied", applied, "failed", failed)
	}
	return nil
}
