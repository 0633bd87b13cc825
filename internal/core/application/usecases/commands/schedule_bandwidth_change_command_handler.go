package commands

import (
	"context"
)

// ScheduleBandwidthChangeCommandHandler plans a pending change for a future
// time, after checking the change's instance belongs to the caller's company.
type ScheduleBandwidthChangeCommandHandler struct {
	uowFactory ChangeUoWFactory
}

// NewScheduleBandwidthChangeCommandHandler creates a handler for change scheduling.
func NewScheduleBandwidthChangeCommandHandler(uowFactory ChangeUoWFactory) ScheduleBandwidthChangeCommandHandler {
	return ScheduleBandwidthChangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the scheduling command.
// Returns InvalidStateError unless the change is still pending.
func (h *ScheduleBandwidthChangeCommandHandler) Handle(
	ctx context.Context, cmd ScheduleBandwidthChangeCommand,
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

	changeRepo := uow.BandwidthChangeRepository()
	change, err := changeRepo.Get(ctx, cmd.ChangeID())
	if err != nil {
		return err
	}

	if err = checkChangeOwnership(ctx, uow, change, cmd.CompanyID()); err != nil {
		return err
	}

	if err = change.Schedule(cmd.At()); err != nil {
		return err
	}

	if err = changeRepo.Update(ctx, change); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
