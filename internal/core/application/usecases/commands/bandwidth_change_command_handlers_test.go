package commands_test

import (
	"testing"
	"time"

	"netondemand/internal/core/application/usecases/commands"
	"netondemand/internal/core/domain/model/bandwidthchange"
	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestChange runs the request handler against the fake store and returns
// the new change's ID.
func requestChange(
	t *testing.T, uow *fakeUoW, companyID kernel.UUID, inst *instance.ServiceInstance, newBandwidth int,
) kernel.UUID {
	t.Helper()

	changeID := kernel.NewUUID()
	cmd, err := commands.NewRequestBandwidthChangeCommand(
		changeID, inst.ID(), companyID, kernel.NewUUID(), newBandwidth, "seasonal traffic peak")
	require.NoError(t, err)

	handler := commands.NewRequestBandwidthChangeCommandHandler(changeUoWFactory{uow})
	require.NoError(t, handler.Handle(t.Context(), cmd))
	return changeID
}

func TestRequestBandwidthChangeCommandHandler(t *testing.T) {
	ctx := t.Context()

	t.Run("records a pending change with the cost impact", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)

		changeID := requestChange(t, uow, companyID, inst, 750)

		change, err := uow.changes.Get(ctx, changeID)
		require.NoError(t, err)
		assert.Equal(t, bandwidthchange.Pending, change.Status())
		assert.Equal(t, 500, change.PreviousBandwidthMbps())
		assert.Equal(t, 750, change.NewBandwidthMbps())
		assert.True(t, change.CostImpact().Equal(decimal.RequireFromString("125.00")),
			"expected 125.00, got %s", change.CostImpact())
		assert.Equal(t, 500, inst.CurrentBandwidthMbps(), "requesting must not mutate the instance")
	})

	t.Run("a decrease carries a negative cost impact", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)
		require.NoError(t, inst.UpdateBandwidth(svc, 750, time.Now()))

		changeID := requestChange(t, uow, companyID, inst, 500)

		change, err := uow.changes.Get(ctx, changeID)
		require.NoError(t, err)
		assert.True(t, change.IsDecrease())
		assert.True(t, change.CostImpact().Equal(decimal.RequireFromString("-125.00")),
			"expected -125.00, got %s", change.CostImpact())
	})

	t.Run("rejects another company's instance", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		inst := seedActiveInstance(t, uow, kernel.NewUUID(), svc)

		cmd, err := commands.NewRequestBandwidthChangeCommand(
			kernel.NewUUID(), inst.ID(), kernel.NewUUID(), kernel.NewUUID(), 750, "")
		require.NoError(t, err)

		handler := commands.NewRequestBandwidthChangeCommandHandler(changeUoWFactory{uow})
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAccessForbidden)
	})

	t.Run("rejects a suspended instance", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)
		require.NoError(t, inst.Suspend())

		cmd, err := commands.NewRequestBandwidthChangeCommand(
			kernel.NewUUID(), inst.ID(), companyID, kernel.NewUUID(), 750, "")
		require.NoError(t, err)

		handler := commands.NewRequestBandwidthChangeCommandHandler(changeUoWFactory{uow})
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects an out-of-range bandwidth", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)

		cmd, err := commands.NewRequestBandwidthChangeCommand(
			kernel.NewUUID(), inst.ID(), companyID, kernel.NewUUID(), 5000, "")
		require.NoError(t, err)

		handler := commands.NewRequestBandwidthChangeCommandHandler(changeUoWFactory{uow})
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBandwidthOutOfRange)
	})
}

func TestScheduleBandwidthChangeCommandHandler(t *testing.T) {
	ctx := t.Context()

	t.Run("schedules a pending change", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)
		changeID := requestChange(t, uow, companyID, inst, 750)

		at := time.Now().Add(48 * time.Hour)
		cmd, err := commands.NewScheduleBandwidthChangeCommand(changeID, companyID, at)
		require.NoError(t, err)

		handler := commands.NewScheduleBandwidthChangeCommandHandler(changeUoWFactory{uow})
		require.NoError(t, handler.Handle(ctx, cmd))

		change, err := uow.changes.Get(ctx, changeID)
		require.NoError(t, err)
		assert.Equal(t, bandwidthchange.Scheduled, change.Status())
		require.NotNil(t, change.ScheduledAt())
	})

	t.Run("rejects scheduling for another company", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)
		changeID := requestChange(t, uow, companyID, inst, 750)

		cmd, err := commands.NewScheduleBandwidthChangeCommand(
			changeID, kernel.NewUUID(), time.Now().Add(time.Hour))
		require.NoError(t, err)

		handler := commands.NewScheduleBandwidthChangeCommandHandler(changeUoWFactory{uow})
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAccessForbidden)
	})
}

func TestApplyBandwidthChangeCommandHandler(t *testing.T) {
	ctx := t.Context()

	t.Run("applies a pending change to the instance", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)
		changeID := requestChange(t, uow, companyID, inst, 750)

		cmd, err := commands.NewApplyBandwidthChangeCommand(changeID, companyID)
		require.NoError(t, err)

		handler := commands.NewApplyBandwidthChangeCommandHandler(changeUoWFactory{uow})
		require.NoError(t, handler.Handle(ctx, cmd))

		change, err := uow.changes.Get(ctx, changeID)
		require.NoError(t, err)
		assert.Equal(t, bandwidthchange.Applied, change.Status())
		assert.Equal(t, 750, inst.CurrentBandwidthMbps())
		assert.True(t, inst.MonthlyCost().Equal(decimal.RequireFromString("424.00")))
	})

	t.Run("cannot apply twice", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)
		changeID := requestChange(t, uow, companyID, inst, 750)

		cmd, err := commands.NewApplyBandwidthChangeCommand(changeID, companyID)
		require.NoError(t, err)

		handler := commands.NewApplyBandwidthChangeCommandHandler(changeUoWFactory{uow})
		require.NoError(t, handler.Handle(ctx, cmd))

		err = handler.Handle(ctx, cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestCancelBandwidthChangeCommandHandler(t *testing.T) {
	ctx := t.Context()

	t.Run("cancels a pending change", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)
		changeID := requestChange(t, uow, companyID, inst, 750)

		cmd, err := commands.NewCancelBandwidthChangeCommand(changeID, companyID)
		require.NoError(t, err)

		handler := commands.NewCancelBandwidthChangeCommandHandler(changeUoWFactory{uow})
		require.NoError(t, handler.Handle(ctx, cmd))

		change, err := uow.changes.Get(ctx, changeID)
		require.NoError(t, err)
		assert.Equal(t, bandwidthchange.Cancelled, change.Status())
		assert.Equal(t, 500, inst.CurrentBandwidthMbps())
	})
}

func TestApplyScheduledChangesCommandHandler(t *testing.T) {
	ctx := t.Context()

	t.Run("applies due changes and skips future ones", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()

		dueInst := seedActiveInstance(t, uow, companyID, svc)
		dueID := requestChange(t, uow, companyID, dueInst, 750)
		dueChange, err := uow.changes.Get(ctx, dueID)
		require.NoError(t, err)
		require.NoError(t, dueChange.Schedule(time.Now().Add(-time.Minute)))

		futureInst := seedActiveInstance(t, uow, companyID, svc)
		futureID := requestChange(t, uow, companyID, futureInst, 750)
		futureChange, err := uow.changes.Get(ctx, futureID)
		require.NoError(t, err)
		require.NoError(t, futureChange.Schedule(time.Now().Add(24*time.Hour)))

		cmd, err := commands.NewApplyScheduledChangesCommand()
		require.NoError(t, err)

		handler := commands.NewApplyScheduledChangesCommandHandler(changeUoWFactory{uow})
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, bandwidthchange.Applied, dueChange.Status())
		assert.Equal(t, 750, dueInst.CurrentBandwidthMbps())
		assert.Equal(t, bandwidthchange.Scheduled, futureChange.Status())
		assert.Equal(t, 500, futureInst.CurrentBandwidthMbps())
	})

	t.Run("a due change on a suspended instance is marked failed", func(t *testing.T) {
		uow := newFakeUoW()
		svc := seedFiberService(t, uow)
		companyID := kernel.NewUUID()
		inst := seedActiveInstance(t, uow, companyID, svc)
		changeID := requestChange(t, uow, companyID, inst, 750)

		change, err := uow.changes.Get(ctx, changeID)
		require.NoError(t, err)
		require.NoError(t, change.Schedule(time.Now().Add(-time.Minute)))
		require.NoError(t, inst.Suspend())

		cmd, err := commands.NewApplyScheduledChangesCommand()
		require.NoError(t, err)

		handler := commands.NewApplyScheduledChangesCommandHandler(changeUoWFactory{uow})
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, bandwidthchange.Failed, change.Status())
		assert.Equal(t, 500, inst.CurrentBandwidthMbps())
	})
}
