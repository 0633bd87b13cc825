package catalog

import (
	"errors"
	"fmt"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrServiceIsNotConstructed is returned when a Service instance was not created
	// through the NewService factory method.
	ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

	// ErrServiceIsRequired is returned when an operation that needs a catalog
	// service receives none.
	ErrServiceIsRequired = errs.NewValueIsRequiredError("catalog service")

	// ErrBasePriceIsRequired is returned by cost calculations when the service
	// carries no base monthly price. A missing price is an error, never a zero cost.
	ErrBasePriceIsRequired = errs.NewValueIsRequiredError("base monthly price")
)

const (
	defaultContractTermMonths    = 12
	defaultProvisioningTimeHours = 24
)

// ServiceParams carries the attributes of a catalog service into NewService.
// Pointer fields model attributes a product may legitimately lack: bandwidth
// bounds and per-Mbps pricing do not apply to every product.
type ServiceParams struct {
	Name                  string
	ServiceType           ServiceType
	BaseBandwidthMbps     *int
	MinBandwidthMbps      *int
	MaxBandwidthMbps      *int
	BasePriceMonthly      *decimal.Decimal
	PricePerMbps          *decimal.Decimal
	SetupFee              decimal.Decimal
	ContractTermMonths    int
	IsBandwidthAdjustable bool
	IsAvailable           bool
	ProvisioningTimeHours int
}

// Service is the read-only catalog definition of an orderable network product.
// It is reference data from the workflows' perspective: orders and service
// instances point at it by ID, validate requested bandwidths against its
// adjustable range, and derive their costs from its tiered pricing.
//
// Service maintains these invariants:
//   - Must have a non-empty name and a valid service type
//   - min <= base <= max bandwidth, for whichever bounds are present
//   - All prices are non-negative
//   - Can only be created through NewService
type Service struct {
	id                    kernel.UUID
	name                  string
	serviceType           ServiceType
	baseBandwidthMbps     *int
	minBandwidthMbps      *int
	maxBandwidthMbps      *int
	basePriceMonthly      *decimal.Decimal
	pricePerMbps          *decimal.Decimal
	setupFee              decimal.Decimal
	contractTermMonths    int
	isBandwidthAdjustable bool
	isAvailable           bool
	provisioningTimeHours int

	isConstructed bool
}

// NewService creates a catalog Service with validation. Contract term and
// provisioning time default to 12 months and 24 hours when left zero,
// matching the catalog's seeded defaults.
func NewService(id kernel.UUID, params ServiceParams) (*Service, error) {
	svc := &Service{
		isConstructed: true,
	}

	if err := errors.Join(
		svc.setID(id),
		svc.setName(params.Name),
		svc.setServiceType(params.ServiceType),
		svc.setBandwidthBounds(params.MinBandwidthMbps, params.BaseBandwidthMbps, params.MaxBandwidthMbps),
		svc.setPricing(params.BasePriceMonthly, params.PricePerMbps, params.SetupFee),
	); err != nil {
		return nil, err
	}

	svc.contractTermMonths = params.ContractTermMonths
	if svc.contractTermMonths == 0 {
		svc.contractTermMonths = defaultContractTermMonths
	}

	svc.provisioningTimeHours = params.ProvisioningTimeHours
	if svc.provisioningTimeHours == 0 {
		svc.provisioningTimeHours = defaultProvisioningTimeHours
	}

	svc.isBandwidthAdjustable = params.IsBandwidthAdjustable
	svc.isAvailable = params.IsAvailable

	return svc, nil
}

// Validate ensures the Service instance was properly constructed through NewService.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// Name returns the catalog display name.
func (s *Service) Name() string {
	return s.name
}

// ServiceType returns the product classification.
func (s *Service) ServiceType() ServiceType {
	return s.serviceType
}

// BaseBandwidthMbps returns the bandwidth covered by the base monthly price,
// or nil when the product has no bandwidth dimension.
func (s *Service) BaseBandwidthMbps() *int {
	return s.baseBandwidthMbps
}

// MinBandwidthMbps returns the lower adjustable bound, or nil when unset.
func (s *Service) MinBandwidthMbps() *int {
	return s.minBandwidthMbps
}

// MaxBandwidthMbps returns the upper adjustable bound, or nil when unset.
func (s *Service) MaxBandwidthMbps() *int {
	return s.maxBandwidthMbps
}

// BasePriceMonthly returns the base monthly price, or nil when the catalog
// entry carries none.
func (s *Service) BasePriceMonthly() *decimal.Decimal {
	return s.basePriceMonthly
}

// PricePerMbps returns the surcharge rate for bandwidth above the base, or nil.
func (s *Service) PricePerMbps() *decimal.Decimal {
	return s.pricePerMbps
}

// SetupFee returns the one-off installation fee. Zero when the product has none.
func (s *Service) SetupFee() decimal.Decimal {
	return s.setupFee
}

// ContractTermMonths returns the contract duration used to derive instance
// contract end dates.
func (s *Service) ContractTermMonths() int {
	return s.contractTermMonths
}

// IsBandwidthAdjustable reports whether active instances of this service may
// change bandwidth after provisioning.
func (s *Service) IsBandwidthAdjustable() bool {
	return s.isBandwidthAdjustable
}

// IsOrderable reports whether the service currently accepts new orders.
func (s *Service) IsOrderable() bool {
	return s.isAvailable
}

// ProvisioningTimeHours returns the advertised provisioning lead time.
func (s *Service) ProvisioningTimeHours() int {
	return s.provisioningTimeHours
}

// ProvisioningDays returns the provisioning lead time in whole days, rounding
// any partial day up.
func (s *Service) ProvisioningDays() int {
	return (s.provisioningTimeHours + 23) / 24
}

// MonthlyCost computes the monthly price of this service at the requested
// bandwidth using tiered pricing:
//
//   - nil bandwidth returns the base monthly price unchanged
//   - bandwidth above the base adds (bandwidth - base) * pricePerMbps
//   - bandwidth at or below the base costs the base price; downgrades below
//     the base bandwidth do not reduce the monthly floor
//
// Arithmetic is fixed-point decimal, rounded to 2 decimal places at the final
// result only. A service without a base monthly price yields an error.
func (s *Service) MonthlyCost(bandwidthMbps *int) (decimal.Decimal, error) {
	if s == nil {
		return decimal.Decimal{}, ErrServiceIsRequired
	}
	if s.basePriceMonthly == nil {
		return decimal.Decimal{}, ErrBasePriceIsRequired
	}

	base := *s.basePriceMonthly
	if bandwidthMbps == nil {
		return base, nil
	}

	if s.pricePerMbps != nil && s.baseBandwidthMbps != nil && *bandwidthMbps > *s.baseBandwidthMbps {
		extra := decimal.NewFromInt(int64(*bandwidthMbps - *s.baseBandwidthMbps))
		return base.Add(s.pricePerMbps.Mul(extra)).Round(2), nil
	}

	return base, nil
}

// IsValidBandwidth reports whether the requested bandwidth is acceptable for
// this service. The check fails closed: a nil or non-positive bandwidth is
// never valid. Bounds are enforced only when the catalog defines them; a
// service without bounds accepts any positive bandwidth.
func (s *Service) IsValidBandwidth(bandwidthMbps *int) bool {
	if bandwidthMbps == nil || *bandwidthMbps <= 0 {
		return false
	}
	if s.minBandwidthMbps != nil && *bandwidthMbps < *s.minBandwidthMbps {
		return false
	}
	if s.maxBandwidthMbps != nil && *bandwidthMbps > *s.maxBandwidthMbps {
		return false
	}
	return true
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("service name")
	}
	s.name = name
	return nil
}

func (s *Service) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	s.serviceType = serviceType
	return nil
}

func (s *Service) setBandwidthBounds(minBW, baseBW, maxBW *int) error {
	for name, v := range map[string]*int{
		"min bandwidth":  minBW,
		"base bandwidth": baseBW,
		"max bandwidth":  maxBW,
	} {
		if v != nil && *v <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", *v))
		}
	}

	if minBW != nil && baseBW != nil && *minBW > *baseBW {
		return errs.NewValueIsInvalidErrorWithCause("bandwidth bounds",
			fmt.Errorf("min %d exceeds base %d", *minBW, *baseBW))
	}
	if baseBW != nil && maxBW != nil && *baseBW > *maxBW {
		return errs.NewValueIsInvalidErrorWithCause("bandwidth bounds",
			fmt.Errorf("base %d exceeds max %d", *baseBW, *maxBW))
	}
	if minBW != nil && maxBW != nil && *minBW > *maxBW {
		return errs.NewValueIsInvalidErrorWithCause("bandwidth bounds",
			fmt.Errorf("min %d exceeds max %d", *minBW, *maxBW))
	}

	s.minBandwidthMbps = minBW
	s.baseBandwidthMbps = baseBW
	s.maxBandwidthMbps = maxBW
	return nil
}

func (s *Service) setPricing(basePrice, perMbps *decimal.Decimal, setupFee decimal.Decimal) error {
	if basePrice != nil && basePrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("base monthly price",
			fmt.Errorf("%s is negative", basePrice))
	}
	if perMbps != nil && perMbps.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price per Mbps",
			fmt.Errorf("%s is negative", perMbps))
	}
	if setupFee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("setup fee",
			fmt.Errorf("%s is negative", setupFee))
	}

	s.basePriceMonthly = basePrice
	s.pricePerMbps = perMbps
	s.setupFee = setupFee
	return nil
}
