package commands_test

import (
	"testing"

	"netondemand/internal/core/application/usecases/commands"
	"netondemand/internal/core/domain/model/bandwidthchange"
	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"
	"netondemand/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteOrderCommandHandler(t *testing.T) {
	ctx := t.Context()
	fulfiller := services.NewOrderFulfiller()

	t.Run("drives a submitted new-service order to completion", func(t *testing.T) {
		uow := newFakeUoW()
		companyID := kernel.NewUUID()
		orderID := submitOrder(t, uow, companyID)
		handler := commands.NewCompleteOrderCommandHandler(fulfilmentUoWFactory{uow}, fulfiller)

		cmd, err := commands.NewCompleteOrderCommand(orderID)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		o, err := uow.orders.Get(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.ActualCompletionDate())

		require.NotNil(t, o.ServiceInstanceID())
		inst, err := uow.instances.Get(ctx, *o.ServiceInstanceID())
		require.NoError(t, err)
		assert.Equal(t, instance.Pending, inst.Status())
		assert.True(t, inst.CompanyID().IsEqual(companyID))
	})

	t.Run("completing a modify order applies a recorded change", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)

		orderID := kernel.NewUUID()
		submitCmd, err := commands.NewSubmitOrderCommand(
			orderID, companyID, kernel.NewUUID(), svc.ID(),
			order.ModifyService, commands.SubmitOrderParams{
				ServiceInstanceID:      uuidPtr(inst.ID()),
				RequestedBandwidthMbps: intPtr(750),
			})
		require.NoError(t, err)
		submitHandler := commands.NewSubmitOrderCommandHandler(orderUoWFactory{uow})
		require.NoError(t, submitHandler.Handle(ctx, submitCmd))

		handler := commands.NewCompleteOrderCommandHandler(fulfilmentUoWFactory{uow}, fulfiller)
		cmd, err := commands.NewCompleteOrderCommand(orderID)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, 750, inst.CurrentBandwidthMbps())
		assert.True(t, inst.MonthlyCost().Equal(decimal.RequireFromString("424.00")))

		require.Len(t, uow.changes.changes, 1)
		for _, change := range uow.changes.changes {
			assert.Equal(t, bandwidthchange.Applied, change.Status())
			assert.Equal(t, 750, change.NewBandwidthMbps())
		}
	})

	t.Run("completing a terminate order ends the instance", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)

		orderID := kernel.NewUUID()
		submitCmd, err := commands.NewSubmitOrderCommand(
			orderID, companyID, kernel.NewUUID(), svc.ID(),
			order.TerminateService, commands.SubmitOrderParams{
				ServiceInstanceID: uuidPtr(inst.ID()),
			})
		require.NoError(t, err)
		submitHandler := commands.NewSubmitOrderCommandHandler(orderUoWFactory{uow})
		require.NoError(t, submitHandler.Handle(ctx, submitCmd))

		handler := commands.NewCompleteOrderCommandHandler(fulfilmentUoWFactory{uow}, fulfiller)
		cmd, err := commands.NewCompleteOrderCommand(orderID)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, instance.Terminated, inst.Status())
	})

	t.Run("a terminal order is left untouched", func(t *testing.T) {
		uow := newFakeUoW()
		companyID := kernel.NewUUID()
		orderID := submitOrder(t, uow, companyID)

		o, err := uow.orders.Get(ctx, orderID)
		require.NoError(t, err)
		require.NoError(t, o.Cancel())

		handler := commands.NewCompleteOrderCommandHandler(fulfilmentUoWFactory{uow}, fulfiller)
		cmd, err := commands.NewCompleteOrderCommand(orderID)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Empty(t, uow.instances.instances)
	})
}
