package commands

import (
	"context"
	"log/slog"
	"time"

	"netondemand/internal/core/domain/model/order"
	"netondemand/internal/core/domain/services"
)

// ProcessOrdersCommandHandler advances the whole order book one step:
// Submitted orders are approved, Approved orders are started, and InProgress
// orders whose estimated completion date has arrived are completed with their
// fulfilment effects. All of it runs in one transaction so a sweep either
// lands fully or not at all.
type ProcessOrdersCommandHandler struct {
	uowFactory FulfilmentUoWFactory
	fulfiller  services.OrderFulfiller
	logger     *slog.Logger
}

// NewProcessOrdersCommandHandler creates a handler for batch order processing.
func NewProcessOrdersCommandHandler(
	uowFactory FulfilmentUoWFactory, fulfiller services.OrderFulfiller,
) ProcessOrdersCommandHandler {
	return ProcessOrdersCommandHandler{
		uowFactory: uowFactory,
		fulfiller:  fulfiller,
		logger:     slog.Default().With("component", "process_orders"),
	}
}

// Handle processes the batch order sweep.
func (h *ProcessOrdersCommandHandler) Handle(ctx context.Context, cmd ProcessOrdersCommand) error {
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

	approved, err := h.advanceAll(ctx, uow, order.Submitted, (*order.Order).Approve)
	if err != nil {
		return err
	}

	started, err := h.advanceAll(ctx, uow, order.Approved, (*order.Order).StartProcessing)
	if err != nil {
		return err
	}

	completed, err := h.completeDue(ctx, uow, now)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if approved+started+completed > 0 {
		h.logger.Info("order sweep finished",
			"approved", approved, "started", started, "completed", completed)
	}
	return nil
}

// advanceAll applies an idempotent transition to every order in the given
// status and persists the ones that moved.
func (h *ProcessOrdersCommandHandler) advanceAll(
	ctx context.Context,
	uow FulfilmentUoW,
	status order.Status,
	transition func(*order.Order) bool,
) (int, error) {
	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllInStatus(ctx, status)
	if err != nil {
		return 0, err
	}

	moved := 0
	for _, o := range orders {
		if !transition(o) {
			h.logger.Warn("transition skipped",
				"order", o.OrderNumber(), "status", o.Status().String())
			continue
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		moved++
	}
	return moved, nil
}

// completeDue completes every in-progress order whose estimated completion
// date is at or before now, applying its fulfilment effects.
func (h *ProcessOrdersCommandHandler) completeDue(
	ctx context.Context, uow FulfilmentUoW, now time.Time,
) (int, error) {
	orders, err := uow.OrderRepository().GetAllInStatus(ctx, order.InProgress)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, o := range orders {
		estimated := o.EstimatedCompletionDate()
		if estimated == nil || estimated.After(now) {
			continue
		}
		if err = completeAndFulfil(ctx, uow, h.fulfiller, o, now); err != nil {
			return 0, err
		}
		completed++
	}
	return completed, nil
}
