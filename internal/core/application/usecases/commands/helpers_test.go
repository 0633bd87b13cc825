package commands_test

import (
	"testing"
	"time"

	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func uuidPtr(id kernel.UUID) *kernel.UUID {
	return &id
}

// seedFiberService registers the pricing fixture used across the handler
// tests: base 500 Mbps at 299.00/month, 0.50 per extra Mbps, 150.00 setup,
// adjustable within 100..1000, 72h provisioning.
func seedFiberService(t *testing.T, uow *fakeUoW) *catalog.Service {
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
	uow.catalog.put(svc)
	return svc
}

// seedActiveInstance stores an active 500 Mbps instance of the given service
// owned by companyID.
func seedActiveInstance(
	t *testing.T, uow *fakeUoW, companyID kernel.UUID, svc *catalog.Service,
) *instance.ServiceInstance {
	t.Helper()

	cost, err := svc.MonthlyCost(intPtr(500))
	require.NoError(t, err)

	inst, err := instance.NewServiceInstance(
		kernel.NewUUID(), companyID, svc.ID(), "HQ uplink", "1 Science Park Rd", 500, cost)
	require.NoError(t, err)
	require.NoError(t, inst.Provision(svc, time.Now()))
	uow.instances.instances[inst.ID()] = inst
	return inst
}
