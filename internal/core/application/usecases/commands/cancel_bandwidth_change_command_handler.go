package commands

import (
	"context"
)

// CancelBandwidthChangeCommandHandler withdraws a change that has not applied
// yet, after checking the change belongs to the caller's company.
type CancelBandwidthChangeCommandHandler struct {
	uowFactory ChangeUoWFactory
}

// NewCancelBandwidthChangeCommandHandler creates a handler for change cancellation.
func NewCancelBandwidthChangeCommandHandler(uowFactory ChangeUoWFactory) CancelBandwidthChangeCommandHandler {
	return CancelBandwidthChangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Returns InvalidStateError unless the change is pending or scheduled.
func (h *CancelBandwidthChangeCommandHandler) Handle(
	ctx context.Context, cmd CancelBandwidthChangeCommand,
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

	if err = change.Cancel(); err != nil {
		return err
	}

	if err = changeRepo.Update(ctx, change); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
