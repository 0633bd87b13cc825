package bandwidthchange_test

import (
	"testing"
	"time"

	"netondemand/internal/core/domain/model/bandwidthchange"
	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func adjustableService(t *testing.T) *catalog.Service {
	t.Helper()

	svc, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
		Name:                  "Business Fiber 500",
		ServiceType:           catalog.Fiber,
		BaseBandwidthMbps:     intPtr(500),
		MinBandwidthMbps:      intPtr(100),
		MaxBandwidthMbps:      intPtr(1000),
		BasePriceMonthly:      decPtr("299.00"),
		PricePerMbps:          decPtr("0.50"),
		IsBandwidthAdjustable: true,
		IsAvailable:           true,
	})
	require.NoError(t, err)
	return svc
}

func activeInstance(t *testing.T, svc *catalog.Service) *instance.ServiceInstance {
	t.Helper()

	cost, err := svc.MonthlyCost(intPtr(500))
	require.NoError(t, err)

	inst, err := instance.NewServiceInstance(
		kernel.NewUUID(), kernel.NewUUID(), svc.ID(), "HQ uplink", "1 Science Park Rd", 500, cost)
	require.NoError(t, err)
	require.NoError(t, inst.Provision(svc, time.Now()))
	return inst
}

func changeFor(t *testing.T, inst *instance.ServiceInstance, newBandwidth int) *bandwidthchange.BandwidthChange {
	t.Helper()

	change, err := bandwidthchange.NewBandwidthChange(
		kernel.NewUUID(), inst.ID(), kernel.NewUUID(),
		inst.CurrentBandwidthMbps(), newBandwidth,
		decimal.RequireFromString("125.00"), "seasonal traffic peak")
	require.NoError(t, err)
	return change
}

func TestNewBandwidthChange(t *testing.T) {
	svc := adjustableService(t)

	t.Run("should create pending change", func(t *testing.T) {
		inst := activeInstance(t, svc)
		change := changeFor(t, inst, 750)

		require.NoError(t, change.Validate())
		assert.Equal(t, bandwidthchange.Pending, change.Status())
		assert.Equal(t, 500, change.PreviousBandwidthMbps())
		assert.Equal(t, 750, change.NewBandwidthMbps())
		assert.Nil(t, change.ScheduledAt())
		assert.Nil(t, change.AppliedAt())
	})

	t.Run("should fail with non-positive bandwidths", func(t *testing.T) {
		_, err := bandwidthchange.NewBandwidthChange(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			0, 750, decimal.Zero, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "previous bandwidth")

		_, err = bandwidthchange.NewBandwidthChange(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			500, -1, decimal.Zero, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "new bandwidth")
	})

	t.Run("should fail with missing user ID", func(t *testing.T) {
		var missing kernel.UUID
		_, err := bandwidthchange.NewBandwidthChange(
			kernel.NewUUID(), kernel.NewUUID(), missing,
			500, 750, decimal.Zero, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "user ID")
	})
}

func TestBandwidthChange_Direction(t *testing.T) {
	svc := adjustableService(t)
	inst := activeInstance(t, svc)

	t.Run("increase", func(t *testing.T) {
		change := changeFor(t, inst, 750)
		assert.True(t, change.IsIncrease())
		assert.False(t, change.IsDecrease())
	})

	t.Run("decrease", func(t *testing.T) {
		change := changeFor(t, inst, 300)
		assert.False(t, change.IsIncrease())
		assert.True(t, change.IsDecrease())
	})

	t.Run("equal value is neither", func(t *testing.T) {
		change := changeFor(t, inst, 500)
		assert.False(t, change.IsIncrease())
		assert.False(t, change.IsDecrease())
	})
}

func TestBandwidthChange_Schedule(t *testing.T) {
	svc := adjustableService(t)

	t.Run("schedules a pending change", func(t *testing.T) {
		inst := activeInstance(t, svc)
		change := changeFor(t, inst, 750)
		at := time.Date(2026, 6, 1, 2, 0, 0, 0, time.UTC)

		require.NoError(t, change.Schedule(at))

		assert.Equal(t, bandwidthchange.Scheduled, change.Status())
		require.NotNil(t, change.ScheduledAt())
		assert.Equal(t, at, *change.ScheduledAt())
	})

	t.Run("cannot schedule twice", func(t *testing.T) {
		inst := activeInstance(t, svc)
		change := changeFor(t, inst, 750)
		require.NoError(t, change.Schedule(time.Now()))

		err := change.Schedule(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestBandwidthChange_Apply(t *testing.T) {
	svc := adjustableService(t)

	t.Run("round trip leaves instance at the new bandwidth and cost", func(t *testing.T) {
		inst := activeInstance(t, svc)
		change := changeFor(t, inst, 750)
		now := time.Date(2026, 6, 1, 2, 0, 0, 0, time.UTC)

		require.NoError(t, change.Apply(inst, svc, now))

		assert.Equal(t, bandwidthchange.Applied, change.Status())
		require.NotNil(t, change.AppliedAt())
		assert.Equal(t, now, *change.AppliedAt())

		assert.Equal(t, change.NewBandwidthMbps(), inst.CurrentBandwidthMbps())
		expected, err := svc.MonthlyCost(intPtr(750))
		require.NoError(t, err)
		assert.True(t, inst.MonthlyCost().Equal(expected))
	})

	t.Run("applies a scheduled change", func(t *testing.T) {
		inst := activeInstance(t, svc)
		change := changeFor(t, inst, 750)
		require.NoError(t, change.Schedule(time.Now()))

		require.NoError(t, change.Apply(inst, svc, time.Now()))
		assert.Equal(t, bandwidthchange.Applied, change.Status())
	})

	t.Run("cannot apply twice", func(t *testing.T) {
		inst := activeInstance(t, svc)
		change := changeFor(t, inst, 750)
		require.NoError(t, change.Apply(inst, svc, time.Now()))

		err := change.Apply(inst, svc, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects a suspended instance and stays pending", func(t *testing.T) {
		inst := activeInstance(t, svc)
		change := changeFor(t, inst, 750)
		require.NoError(t, inst.Suspend())

		err := change.Apply(inst, svc, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, bandwidthchange.Pending, change.Status())
		assert.Nil(t, change.AppliedAt())
	})

	t.Run("rejects the wrong instance", func(t *testing.T) {
		inst := activeInstance(t, svc)
		other := activeInstance(t, svc)
		change := changeFor(t, inst, 750)

		err := change.Apply(other, svc, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out-of-range change stays pending", func(t *testing.T) {
		inst := activeInstance(t, svc)
		change := changeFor(t, inst, 5000)

		err := change.Apply(inst, svc, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBandwidthOutOfRange)
		assert.Equal(t, bandwidthchange.Pending, change.Status())
		assert.Equal(t, 500, inst.CurrentBandwidthMbps())
	})
}

func TestBandwidthChange_CancelAndFail(t *testing.T) {
	svc := adjustableService(t)

	t.Run("cancel from pending and scheduled", func(t *testing.T) {
		inst := activeInstance(t, svc)

		pending := changeFor(t, inst, 750)
		require.NoError(t, pending.Cancel())
		assert.Equal(t, bandwidthchange.Cancelled, pending.Status())

		scheduled := changeFor(t, inst, 750)
		require.NoError(t, scheduled.Schedule(time.Now()))
		require.NoError(t, scheduled.Cancel())
		assert.Equal(t, bandwidthchange.Cancelled, scheduled.Status())
	})

	t.Run("cannot cancel an applied change", func(t *testing.T) {
		inst := activeInstance(t, svc)
		change := changeFor(t, inst, 750)
		require.NoError(t, change.Apply(inst, svc, time.Now()))

		err := change.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("fail records the failure", func(t *testing.T) {
		inst := activeInstance(t, svc)
		change := changeFor(t, inst, 750)

		require.NoError(t, change.Fail())
		assert.Equal(t, bandwidthchange.Failed, change.Status())
	})
}

func TestRestoreBandwidthChange(t *testing.T) {
	t.Run("restores full persisted state", func(t *testing.T) {
		scheduledAt := time.Date(2026, 6, 1, 2, 0, 0, 0, time.UTC)
		appliedAt := scheduledAt.Add(time.Minute)

		change, err := bandwidthchange.RestoreBandwidthChange(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			500, 750, decimal.RequireFromString("125.00"), "seasonal traffic peak",
			bandwidthchange.Applied, &scheduledAt, &appliedAt)

		require.NoError(t, err)
		assert.Equal(t, bandwidthchange.Applied, change.Status())
		assert.Equal(t, &scheduledAt, change.ScheduledAt())
		assert.Equal(t, &appliedAt, change.AppliedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := bandwidthchange.RestoreBandwidthChange(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			500, 750, decimal.Zero, "", bandwidthchange.UnknownStatus, nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}
