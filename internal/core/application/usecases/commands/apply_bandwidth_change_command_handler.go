package commands

import (
	"context"
	"time"

	"netondemand/internal/core/domain/model/bandwidthchange"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"
)

// ApplyBandwidthChangeCommandHandler applies a single change on demand: the
// instance's bandwidth and monthly cost move to the change's new value, and
// both aggregates are persisted in the same transaction.
type ApplyBandwidthChangeCommandHandler struct {
	uowFactory ChangeUoWFactory
}

// NewApplyBandwidthChangeCommandHandler creates a handler for applying changes.
func NewApplyBandwidthChangeCommandHandler(uowFactory ChangeUoWFactory) ApplyBandwidthChangeCommandHandler {
	return ApplyBandwidthChangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the apply command.
// Returns InvalidStateError unless the change is pending or scheduled and
// the instance is active and adjustable.
func (h *ApplyBandwidthChangeCommandHandler) Handle(
	ctx context.Context, cmd ApplyBandwidthChangeCommand,
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

	change, err := uow.BandwidthChangeRepository().Get(ctx, cmd.ChangeID())
	if err != nil {
		return err
	}

	if err = checkChangeOwnership(ctx, uow, change, cmd.CompanyID()); err != nil {
		return err
	}

	if err = applyChange(ctx, uow, change, time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyChange loads the change's instance and service, applies the change,
// and persists both aggregates. Shared with the scheduled application sweep.
func applyChange(
	ctx context.Context, uow ChangeUoW, change *bandwidthchange.BandwidthChange, now time.Time,
) error {
	inst, err := uow.ServiceInstanceRepository().Get(ctx, change.ServiceInstanceID())
	if err != nil {
		return err
	}

	service, err := uow.ServiceCatalog().GetService(ctx, inst.ServiceID())
	if err != nil {
		return err
	}

	if err = change.Apply(inst, service, now); err != nil {
		return err
	}

	if err = uow.ServiceInstanceRepository().Update(ctx, inst); err != nil {
		return err
	}
	return uow.BandwidthChangeRepository().Update(ctx, change)
}

// checkChangeOwnership verifies the change's target instance belongs to the
// given company.
func checkChangeOwnership(
	ctx context.Context, uow ChangeUoW, change *bandwidthchange.BandwidthChange, companyID kernel.UUID,
) error {
	inst, err := uow.ServiceInstanceRepository().Get(ctx, change.ServiceInstanceID())
	if err != nil {
		return err
	}
	if !inst.CompanyID().IsEqual(companyID) {
		return errs.NewAccessForbiddenError("bandwidth change", change.ID())
	}
	return nil
}
