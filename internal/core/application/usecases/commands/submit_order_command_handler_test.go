package commands_test

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"netondemand/internal/core/application/usecases/commands"
	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"
	"netondemand/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSubmitOrderCommandHandler_NewService(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	svc := seedFiberService(t, uow)
	handler := commands.NewSubmitOrderCommandHandler(orderUoWFactory{uow})

	t.Run("prices the order and estimates completion", func(t *testing.T) {
		orderID := kernel.NewUUID()
		requested := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		cmd, err := commands.NewSubmitOrderCommand(
			orderID, kernel.NewUUID(), kernel.NewUUID(), svc.ID(),
			order.NewService, commands.SubmitOrderParams{
				RequestedBandwidthMbps: intPtr(500),
				RequestedDate:          &requested,
				InstallationAddress:    "1 Science Park Rd",
			})
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		o, err := uow.orders.Get(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, order.Submitted, o.Status())
		// 299.00 monthly + 150.00 setup
		assert.True(t, o.TotalCost().Equal(decimal.RequireFromString("449.00")),
			"expected 449.00, got %s", o.TotalCost())
		// 72h provisioning rounds to 3 days
		require.NotNil(t, o.EstimatedCompletionDate())
		assert.Equal(t, requested.AddDate(0, 0, 3), *o.EstimatedCompletionDate())
		assert.Regexp(t, `^ORD-\d{6}$`, o.OrderNumber())
	})

	t.Run("defaults the requested date to tomorrow", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cmd, err := commands.NewSubmitOrderCommand(
			orderID, kernel.NewUUID(), kernel.NewUUID(), svc.ID(),
			order.NewService, commands.SubmitOrderParams{
				RequestedBandwidthMbps: intPtr(500),
			})
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		o, err := uow.orders.Get(ctx, orderID)
		require.NoError(t, err)
		assert.True(t, o.RequestedDate().After(time.Now()),
			"requested date %s should be in the future", o.RequestedDate())
	})

	t.Run("rejects a bandwidth outside the service bounds", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), svc.ID(),
			order.NewService, commands.SubmitOrderParams{
				RequestedBandwidthMbps: intPtr(5000),
			})
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBandwidthOutOfRange)
	})

	t.Run("rejects an unknown service", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.NewService, commands.SubmitOrderParams{
				RequestedBandwidthMbps: intPtr(500),
			})
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rejects a retired service", func(t *testing.T) {
		retired, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
			Name:             "Retired product",
			ServiceType:      catalog.VPN,
			BasePriceMonthly: decPtr("89.00"),
			IsAvailable:      false,
		})
		require.NoError(t, err)
		uow.catalog.put(retired)

		cmd, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), retired.ID(),
			order.NewService, commands.SubmitOrderParams{
				RequestedBandwidthMbps: intPtr(100),
			})
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrServiceUnavailable)
	})
}

func TestSubmitOrderCommandHandler_ModifyService(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	svc := seedFiberService(t, uow)
	companyID := kernel.NewUUID()
	handler := commands.NewSubmitOrderCommandHandler(orderUoWFactory{uow})

	t.Run("prices the signed monthly delta", func(t *testing.T) {
		inst := seedActiveInstance(t, uow, companyID, svc)
		orderID := kernel.NewUUID()
		cmd, err := commands.NewSubmitOrderCommand(
			orderID, companyID, kernel.NewUUID(), svc.ID(),
			order.ModifyService, commands.SubmitOrderParams{
				ServiceInstanceID:      uuidPtr(inst.ID()),
				RequestedBandwidthMbps: intPtr(750),
			})
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		o, err := uow.orders.Get(ctx, orderID)
		require.NoError(t, err)
		// 424.00 new monthly minus 299.00 current
		assert.True(t, o.TotalCost().Equal(decimal.RequireFromString("125.00")),
			"expected 125.00, got %s", o.TotalCost())
	})

	t.Run("a downgrade below base prices to zero delta", func(t *testing.T) {
		inst := seedActiveInstance(t, uow, companyID, svc)
		orderID := kernel.NewUUID()
		cmd, err := commands.NewSubmitOrderCommand(
			orderID, companyID, kernel.NewUUID(), svc.ID(),
			order.ModifyService, commands.SubmitOrderParams{
				ServiceInstanceID:      uuidPtr(inst.ID()),
				RequestedBandwidthMbps: intPtr(300),
			})
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		o, err := uow.orders.Get(ctx, orderID)
		require.NoError(t, err)
		assert.True(t, o.TotalCost().IsZero(), "expected 0.00, got %s", o.TotalCost())
	})

	t.Run("rejects an instance owned by another company", func(t *testing.T) {
		foreign := seedActiveInstance(t, uow, kernel.NewUUID(), svc)
		cmd, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(), companyID, kernel.NewUUID(), svc.ID(),
			order.ModifyService, commands.SubmitOrderParams{
				ServiceInstanceID:      uuidPtr(foreign.ID()),
				RequestedBandwidthMbps: intPtr(750),
			})
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAccessForbidden)
	})

	t.Run("rejects a missing instance reference", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(), companyID, kernel.NewUUID(), svc.ID(),
			order.ModifyService, commands.SubmitOrderParams{
				RequestedBandwidthMbps: intPtr(750),
			})
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSubmitOrderCommandHandler_TerminateService(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	svc := seedFiberService(t, uow)
	companyID := kernel.NewUUID()
	handler := commands.NewSubmitOrderCommandHandler(orderUoWFactory{uow})

	t.Run("costs zero regardless of instance bandwidth", func(t *testing.T) {
		inst := seedActiveInstance(t, uow, companyID, svc)
		orderID := kernel.NewUUID()
		cmd, err := commands.NewSubmitOrderCommand(
			orderID, companyID, kernel.NewUUID(), svc.ID(),
			order.TerminateService, commands.SubmitOrderParams{
				ServiceInstanceID: uuidPtr(inst.ID()),
			})
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		o, err := uow.orders.Get(ctx, orderID)
		require.NoError(t, err)
		assert.True(t, o.TotalCost().IsZero())
		assert.Nil(t, o.RequestedBandwidthMbps())
	})
}

func TestSubmitOrderCommandHandler_OrderNumbersAreInjective(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	svc := seedFiberService(t, uow)
	handler := commands.NewSubmitOrderCommandHandler(orderUoWFactory{uow})

	const n = 50
	orderIDs := make([]kernel.UUID, n)
	for i := range orderIDs {
		orderIDs[i] = kernel.NewUUID()
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		cmd, err := commands.NewSubmitOrderCommand(
			orderIDs[i], kernel.NewUUID(), kernel.NewUUID(), svc.ID(),
			order.NewService, commands.SubmitOrderParams{
				RequestedBandwidthMbps: intPtr(500),
			})
		require.NoError(t, err)

		g.Go(func() error {
			return handler.Handle(gctx, cmd)
		})
	}
	require.NoError(t, g.Wait())

	numbers := make([]string, 0, n)
	for _, id := range orderIDs {
		o, err := uow.orders.Get(ctx, id)
		require.NoError(t, err)
		numbers = append(numbers, o.OrderNumber())
	}

	sort.Strings(numbers)
	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("ORD-%06d", i+1), numbers[i])
	}
}
