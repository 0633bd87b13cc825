package catalog_test

import (
	"testing"

	"netondemand/internal/core/domain/model/catalog"
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

func fiberService(t *testing.T) *catalog.Service {
	t.Helper()

	svc, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
		Name:                  "Business Fiber 500",
		ServiceType:           catalog.Fiber,
		BaseBandwidthMbps:     intPtr(500),
		MinBandwidthMbps:      intPtr(100),
		MaxBandwidthMbps:      intPtr(1000),
		BasePriceMonthly:      decPtr("299.00"),
		PricePerMbps:          decPtr("0.50"),
		SetupFee:              decimal.RequireFromString("150.00"),
		IsBandwidthAdjustable: true,
		IsAvailable:           true,
		ProvisioningTimeHours: 72,
	})
	require.NoError(t, err)
	return svc
}

func TestNewService(t *testing.T) {
	t.Run("should create valid service with defaults applied", func(t *testing.T) {
		svc, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
			Name:             "Managed VPN",
			ServiceType:      catalog.VPN,
			BasePriceMonthly: decPtr("89.00"),
			IsAvailable:      true,
		})

		require.NoError(t, err)
		require.NoError(t, svc.Validate())
		assert.Equal(t, 12, svc.ContractTermMonths())
		assert.Equal(t, 24, svc.ProvisioningTimeHours())
		assert.Equal(t, 1, svc.ProvisioningDays())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
			ServiceType: catalog.Fiber,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "service name")
	})

	t.Run("should fail with invalid service type", func(t *testing.T) {
		_, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
			Name:        "Mystery product",
			ServiceType: catalog.UnknownServiceType,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "service type is invalid")
	})

	t.Run("should fail when min exceeds base bandwidth", func(t *testing.T) {
		_, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
			Name:              "Broken bounds",
			ServiceType:       catalog.Fiber,
			MinBandwidthMbps:  intPtr(600),
			BaseBandwidthMbps: intPtr(500),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "min 600 exceeds base 500")
	})

	t.Run("should fail with negative base price", func(t *testing.T) {
		_, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
			Name:             "Negative price",
			ServiceType:      catalog.Dedicated,
			BasePriceMonthly: decPtr("-1.00"),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "base monthly price")
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var svc *catalog.Service

		assert.Equal(t, catalog.ErrServiceIsNotConstructed, svc.Validate())
	})
}

func TestService_MonthlyCost(t *testing.T) {
	svc := fiberService(t)

	t.Run("bandwidth above base adds per-Mbps surcharge", func(t *testing.T) {
		cost, err := svc.MonthlyCost(intPtr(750))

		require.NoError(t, err)
		assert.True(t, cost.Equal(decimal.RequireFromString("424.00")),
			"expected 424.00, got %s", cost)
	})

	t.Run("bandwidth below base is not discounted", func(t *testing.T) {
		cost, err := svc.MonthlyCost(intPtr(300))

		require.NoError(t, err)
		assert.True(t, cost.Equal(decimal.RequireFromString("299.00")))
	})

	t.Run("bandwidth at base costs the base price", func(t *testing.T) {
		cost, err := svc.MonthlyCost(intPtr(500))

		require.NoError(t, err)
		assert.True(t, cost.Equal(decimal.RequireFromString("299.00")))
	})

	t.Run("nil bandwidth returns base price unchanged", func(t *testing.T) {
		cost, err := svc.MonthlyCost(nil)

		require.NoError(t, err)
		assert.True(t, cost.Equal(decimal.RequireFromString("299.00")))
	})

	t.Run("fractional surcharge rounds only at the final result", func(t *testing.T) {
		odd, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
			Name:              "Odd rate",
			ServiceType:       catalog.Dedicated,
			BaseBandwidthMbps: intPtr(100),
			BasePriceMonthly:  decPtr("100.00"),
			PricePerMbps:      decPtr("0.333"),
			IsAvailable:       true,
		})
		require.NoError(t, err)

		// 100.00 + 7 * 0.333 = 102.331, rounded once to 102.33
		cost, err := odd.MonthlyCost(intPtr(107))

		require.NoError(t, err)
		assert.True(t, cost.Equal(decimal.RequireFromString("102.33")),
			"expected 102.33, got %s", cost)
	})

	t.Run("missing base price yields an error", func(t *testing.T) {
		unpriced, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
			Name:        "Unpriced",
			ServiceType: catalog.VPN,
			IsAvailable: true,
		})
		require.NoError(t, err)

		_, err = unpriced.MonthlyCost(intPtr(100))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("nil service yields an error", func(t *testing.T) {
		var nilSvc *catalog.Service

		_, err := nilSvc.MonthlyCost(intPtr(100))

		require.Error(t, err)
	})
}

func TestService_IsValidBandwidth(t *testing.T) {
	svc := fiberService(t)

	t.Run("accepts values within bounds inclusive", func(t *testing.T) {
		assert.True(t, svc.IsValidBandwidth(intPtr(100)))
		assert.True(t, svc.IsValidBandwidth(intPtr(500)))
		assert.True(t, svc.IsValidBandwidth(intPtr(1000)))
	})

	t.Run("rejects values outside bounds", func(t *testing.T) {
		assert.False(t, svc.IsValidBandwidth(intPtr(99)))
		assert.False(t, svc.IsValidBandwidth(intPtr(1001)))
	})

	t.Run("fails closed on nil bandwidth", func(t *testing.T) {
		assert.False(t, svc.IsValidBandwidth(nil))
	})

	t.Run("accepts any positive bandwidth when no bounds are set", func(t *testing.T) {
		unbounded, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
			Name:             "Unbounded",
			ServiceType:      catalog.Dedicated,
			BasePriceMonthly: decPtr("500.00"),
			IsAvailable:      true,
		})
		require.NoError(t, err)

		assert.True(t, unbounded.IsValidBandwidth(intPtr(1)))
		assert.True(t, unbounded.IsValidBandwidth(intPtr(100000)))
		assert.False(t, unbounded.IsValidBandwidth(intPtr(0)))
		assert.False(t, unbounded.IsValidBandwidth(intPtr(-10)))
	})
}

func TestService_IsOrderable(t *testing.T) {
	t.Run("reflects the availability flag", func(t *testing.T) {
		svc := fiberService(t)
		assert.True(t, svc.IsOrderable())

		retired, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
			Name:             "Retired product",
			ServiceType:      catalog.Fiber,
			BasePriceMonthly: decPtr("199.00"),
			IsAvailable:      false,
		})
		require.NoError(t, err)
		assert.False(t, retired.IsOrderable())
	})
}

func TestService_ProvisioningDays(t *testing.T) {
	t.Run("rounds partial days up", func(t *testing.T) {
		svc, err := catalog.NewService(kernel.NewUUID(), catalog.ServiceParams{
			Name:                  "Slow install",
			ServiceType:           catalog.Dedicated,
			BasePriceMonthly:      decPtr("500.00"),
			ProvisioningTimeHours: 25,
			IsAvailable:           true,
		})
		require.NoError(t, err)

		assert.Equal(t, 2, svc.ProvisioningDays())
	})
}
