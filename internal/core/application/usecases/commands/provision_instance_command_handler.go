package commands

import (
	"context"
	"time"
)

// ProvisionInstanceCommandHandler activates a service instance: it stamps the
// provisioning timestamp and derives the contract dates from the backing
// catalog service's term.
type ProvisionInstanceCommandHandler struct {
	uowFactory InstanceUoWFactory
}

// NewProvisionInstanceCommandHandler creates a handler for instance provisioning.
func NewProvisionInstanceCommandHandler(uowFactory InstanceUoWFactory) ProvisionInstanceCommandHandler {
	return ProvisionInstanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the provisioning command.
// Returns InvalidStateError if the instance is not pending or provisioning.
func (h *ProvisionInstanceCommandHandler) Handle(ctx context.Context, cmd ProvisionInstanceCommand) error {
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

	instanceRepo := uow.ServiceInstanceRepository()
	inst, err := instanceRepo.Get(ctx, cmd.InstanceID())
	if err != nil {
		return err
	}

	service, err := uow.ServiceCatalog().GetService(ctx, inst.ServiceID())
	if err != nil {
		return err
	}

	if err = inst.Provision(service, time.Now()); err != nil {
		return err
	}

	if err = instanceRepo.Update(ctx, inst); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
