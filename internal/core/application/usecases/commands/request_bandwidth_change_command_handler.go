package commands

import (
	"context"

	"netondemand/internal/core/domain/model/bandwidthchange"
	"netondemand/internal/pkg/errs"
)

// RequestBandwidthChangeCommandHandler records a bandwidth change request
// against an active service instance: it enforces ownership, adjustability,
// and catalog bounds, and computes the signed monthly cost impact.
type RequestBandwidthChangeCommandHandler struct {
	uowFactory ChangeUoWFactory
}

// NewRequestBandwidthChangeCommandHandler creates a handler for bandwidth change requests.
func NewRequestBandwidthChangeCommandHandler(uowFactory ChangeUoWFactory) RequestBandwidthChangeCommandHandler {
	return RequestBandwidthChangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bandwidth change request.
// Returns AccessForbiddenError for an instance owned by another company,
// InvalidStateError when the instance cannot be adjusted, and
// BandwidthOutOfRangeError when the value fails the service's bounds.
func (h *RequestBandwidthChangeCommandHandler) Handle(
	ctx context.Context, cmd RequestBandwidthChangeCommand,
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

	inst, err := uow.ServiceInstanceRepository().Get(ctx, cmd.InstanceID())
	if err != nil {
		return err
	}
	if !inst.CompanyID().IsEqual(cmd.CompanyID()) {
		return errs.NewAccessForbiddenError("service instance", inst.ID())
	}

	service, err := uow.ServiceCatalog().GetService(ctx, inst.ServiceID())
	if err != nil {
		return err
	}
	if !inst.CanAdjustBandwidth(service) {
		return errs.NewInvalidStateError("service instance", "adjust bandwidth", inst.Status().String())
	}

	newBandwidth := cmd.NewBandwidthMbps()
	if !service.IsValidBandwidth(&newBandwidth) {
		return errs.NewBandwidthOutOfRangeError(newBandwidth,
			derefOrNil(service.MinBandwidthMbps()), derefOrNil(service.MaxBandwidthMbps()))
	}

	current := inst.CurrentBandwidthMbps()
	currentCost, err := service.MonthlyCost(&current)
	if err != nil {
		return err
	}
	newCost, err := service.MonthlyCost(&newBandwidth)
	if err != nil {
		return err
	}

	change, err := bandwidthchange.NewBandwidthChange(
		cmd.ChangeID(), inst.ID(), cmd.UserID(),
		current, newBandwidth, newCost.Sub(currentCost), cmd.Reason())
	if err != nil {
		return err
	}

	if err = uow.BandwidthChangeRepository().Add(ctx, change); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
