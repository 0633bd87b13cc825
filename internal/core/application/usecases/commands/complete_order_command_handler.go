package commands

import (
	"context"
	"log/slog"
	"time"

	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/order"
	"netondemand/internal/core/domain/services"
	"netondemand/internal/pkg/errs"
)

// CompleteOrderCommandHandler drives a single order to completion. Approve
// and start-processing are applied first if the order has not passed through
// them yet, so a completion callback arriving early still succeeds; skipped
// transitions are logged rather than raised. On completion the order's
// fulfilment effects are applied through the OrderFulfiller in the same
// transaction.
type CompleteOrderCommandHandler struct {
	uowFactory FulfilmentUoWFactory
	fulfiller  services.OrderFulfiller
	logger     *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory FulfilmentUoWFactory, fulfiller services.OrderFulfiller,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		fulfiller:  fulfiller,
		logger:     slog.Default().With("component", "complete_order"),
	}
}

// Handle processes the order completion command. A terminal order is left
// untouched: completion is idempotent, so a replayed trigger logs and
// returns without error.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.Status().IsTerminal() {
		h.logger.Info("completion trigger skipped, order already terminal",
			"order", o.OrderNumber(), "status", o.Status().String())
		return nil
	}

	if o.Approve() {
		h.logger.Info("order approved on completion trigger", "order", o.OrderNumber())
	}
	if o.StartProcessing() {
		h.logger.Info("order started on completion trigger", "order", o.OrderNumber())
	}

	if err = completeAndFulfil(ctx, uow, h.fulfiller, o, time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// completeAndFulfil applies the fulfilment effects of an in-progress order,
// marks it completed, and persists everything through the given unit of work.
// Shared with the batch order-processing handler.
func completeAndFulfil(
	ctx context.Context,
	uow FulfilmentUoW,
	fulfiller services.OrderFulfiller,
	o *order.Order,
	now time.Time,
) error {
	service, err := uow.ServiceCatalog().GetService(ctx, o.ServiceID())
	if err != nil {
		return err
	}

	var inst *instance.ServiceInstance
	if o.OrderType().RequiresInstance() {
		if o.ServiceInstanceID() == nil {
			return errs.NewValueIsRequiredError("service instance ID")
		}
		inst, err = uow.ServiceInstanceRepository().Get(ctx, *o.ServiceInstanceID())
		if err != nil {
			return err
		}
	}

	result, err := fulfiller.Fulfil(o, service, inst, now)
	if err != nil {
		return err
	}

	if !o.Complete(now) {
		return errs.NewInvalidStateError("order", "complete", o.Status().String())
	}

	instanceRepo := uow.ServiceInstanceRepository()
	if result.InstanceCreated {
		err = instanceRepo.Add(ctx, result.Instance)
	} else {
		err = instanceRepo.Update(ctx, result.Instance)
	}
	if err != nil {
		return err
	}

	if result.Change != nil {
		if err = uow.BandwidthChangeRepository().Add(ctx, result.Change); err != nil {
			return err
		}
	}

	return uow.OrderRepository().Update(ctx, o)
}
