package instance

import (
	"errors"
	"fmt"
	"time"

	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrServiceInstanceIsNotConstructed is returned when a ServiceInstance was not
// created through NewServiceInstance or RestoreServiceInstance.
var ErrServiceInstanceIsNotConstructed = errors.New(
	"ServiceInstance must be created via NewServiceInstance or RestoreServiceInstance constructor")

// ServiceInstance is the aggregate root for a company's live subscription to a
// catalog service. It owns the current bandwidth and the monthly cost derived
// from it, and enforces the provisioning lifecycle.
//
// Invariants:
//   - Exactly one owning company and one backing catalog service, by ID
//   - Current bandwidth always lies within the service's bounds, when defined,
//     because UpdateBandwidth is the only mutation path and it validates
//   - Status transitions follow the lifecycle defined on Status
type ServiceInstance struct {
	id                   kernel.UUID
	companyID            kernel.UUID
	serviceID            kernel.UUID
	instanceName         string
	installationAddress  string
	currentBandwidthMbps int
	monthlyCost          decimal.Decimal
	status               Status

	contractStartDate     *time.Time
	contractEndDate       *time.Time
	lastBandwidthChangeAt *time.Time
	provisionedAt         *time.Time

	isConstructed bool
}

// NewServiceInstance creates a ServiceInstance in Pending status. The monthly
// cost must already be computed from the backing service's pricing for the
// initial bandwidth; the workflows do this before constructing the instance.
func NewServiceInstance(
	id kernel.UUID,
	companyID kernel.UUID,
	serviceID kernel.UUID,
	instanceName string,
	installationAddress string,
	currentBandwidthMbps int,
	monthlyCost decimal.Decimal,
) (*ServiceInstance, error) {
	inst := &ServiceInstance{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		inst.setID(id),
		inst.setCompanyID(companyID),
		inst.setServiceID(serviceID),
		inst.setInstanceName(instanceName),
		inst.setBandwidth(currentBandwidthMbps),
	); err != nil {
		return nil, err
	}

	inst.installationAddress = installationAddress
	inst.monthlyCost = monthlyCost
	return inst, nil
}

// RestoreServiceInstance reconstructs a ServiceInstance from persistence with
// its full state. Used by repository implementations only.
func RestoreServiceInstance(
	id kernel.UUID,
	companyID kernel.UUID,
	serviceID kernel.UUID,
	instanceName string,
	installationAddress string,
	currentBandwidthMbps int,
	monthlyCost decimal.Decimal,
	status Status,
	contractStartDate *time.Time,
	contractEndDate *time.Time,
	lastBandwidthChangeAt *time.Time,
	provisionedAt *time.Time,
) (*ServiceInstance, error) {
	inst, err := NewServiceInstance(
		id, companyID, serviceID, instanceName, installationAddress, currentBandwidthMbps, monthlyCost)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	inst.status = status
	inst.contractStartDate = contractStartDate
	inst.contractEndDate = contractEndDate
	inst.lastBandwidthChangeAt = lastBandwidthChangeAt
	inst.provisionedAt = provisionedAt
	return inst, nil
}

// Validate ensures the instance was created through a constructor.
func (i *ServiceInstance) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrServiceInstanceIsNotConstructed
	}
	return nil
}

// IsEqual compares two instances by their unique identifiers.
func (i *ServiceInstance) IsEqual(other *ServiceInstance) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the instance's unique identifier.
func (i *ServiceInstance) ID() kernel.UUID {
	return i.id
}

// CompanyID returns the owning company's identifier.
func (i *ServiceInstance) CompanyID() kernel.UUID {
	return i.companyID
}

// ServiceID returns the backing catalog service's identifier.
func (i *ServiceInstance) ServiceID() kernel.UUID {
	return i.serviceID
}

// InstanceName returns the customer-facing name of the subscription.
func (i *ServiceInstance) InstanceName() string {
	return i.instanceName
}

// InstallationAddress returns where the service is delivered.
func (i *ServiceInstance) InstallationAddress() string {
	return i.installationAddress
}

// CurrentBandwidthMbps returns the bandwidth the company is billed for.
func (i *ServiceInstance) CurrentBandwidthMbps() int {
	return i.currentBandwidthMbps
}

// MonthlyCost returns the current monthly cost.
func (i *ServiceInstance) MonthlyCost() decimal.Decimal {
	return i.monthlyCost
}

// Status returns the current lifecycle status.
func (i *ServiceInstance) Status() Status {
	return i.status
}

// ContractStartDate returns the contract start date, nil before provisioning.
func (i *ServiceInstance) ContractStartDate() *time.Time {
	return i.contractStartDate
}

// ContractEndDate returns the contract end date, nil before provisioning.
func (i *ServiceInstance) ContractEndDate() *time.Time {
	return i.contractEndDate
}

// LastBandwidthChangeAt returns when the bandwidth last changed, nil if never.
func (i *ServiceInstance) LastBandwidthChangeAt() *time.Time {
	return i.lastBandwidthChangeAt
}

// ProvisionedAt returns when the instance went active, nil before that.
func (i *ServiceInstance) ProvisionedAt() *time.Time {
	return i.provisionedAt
}

// IsActive reports whether the instance is live and billable.
func (i *ServiceInstance) IsActive() bool {
	return i.status == Active
}

// StartProvisioning moves a pending instance into the Provisioning state.
// Returns InvalidStateError from any other state.
func (i *ServiceInstance) StartProvisioning() error {
	newStatus, err := i.status.StartProvisioning()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// Provision activates the instance: it stamps provisionedAt, defaults the
// contract start date to the given day when unset, and derives the contract
// end date from the service's contract term when unset.
// Returns InvalidStateError unless the instance is Pending or Provisioning.
func (i *ServiceInstance) Provision(service *catalog.Service, now time.Time) error {
	if err := service.Validate(); err != nil {
		return err
	}
	if i.status == Suspended {
		return errs.NewInvalidStateError("service instance", "provision", i.status.String())
	}

	newStatus, err := i.status.Activate()
	if err != nil {
		return err
	}
	i.status = newStatus

	provisionedAt := now
	i.provisionedAt = &provisionedAt

	if i.contractStartDate == nil {
		start := dateOf(now)
		i.contractStartDate = &start
	}
	if i.contractEndDate == nil {
		end := i.contractStartDate.AddDate(0, service.ContractTermMonths(), 0)
		i.contractEndDate = &end
	}

	return nil
}

// Suspend temporarily disables an active instance.
func (i *ServiceInstance) Suspend() error {
	newStatus, err := i.status.Suspend()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// Resume reactivates a suspended instance.
func (i *ServiceInstance) Resume() error {
	if i.status != Suspended {
		return errs.NewInvalidStateError("service instance", "resume", i.status.String())
	}
	newStatus, err := i.status.Activate()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// Terminate ends the subscription. Legal from every state except Terminated.
func (i *ServiceInstance) Terminate() error {
	newStatus, err := i.status.Terminate()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// CanAdjustBandwidth reports whether a bandwidth change may be requested:
// the instance must be active and the backing service must allow adjustment.
func (i *ServiceInstance) CanAdjustBandwidth(service *catalog.Service) bool {
	return i.status == Active && service != nil && service.IsBandwidthAdjustable()
}

// UpdateBandwidth is the single authorized path by which the billed bandwidth
// may change. It validates the new value against the service's bounds, sets
// the bandwidth, stamps lastBandwidthChangeAt, and recomputes the monthly
// cost from the service's tiered pricing.
//
// Invoked by an applied bandwidth change or directly when a modify-service
// order completes; both callers gate on CanAdjustBandwidth first.
func (i *ServiceInstance) UpdateBandwidth(service *catalog.Service, newBandwidthMbps int, now time.Time) error {
	if err := service.Validate(); err != nil {
		return err
	}
	if !service.IsValidBandwidth(&newBandwidthMbps) {
		return errs.NewBandwidthOutOfRangeError(
			newBandwidthMbps, derefOrNil(service.MinBandwidthMbps()), derefOrNil(service.MaxBandwidthMbps()))
	}

	newCost, err := service.MonthlyCost(&newBandwidthMbps)
	if err != nil {
		return err
	}

	i.currentBandwidthMbps = newBandwidthMbps
	i.monthlyCost = newCost
	changedAt := now
	i.lastBandwidthChangeAt = &changedAt
	return nil
}

func (i *ServiceInstance) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *ServiceInstance) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company ID", err)
	}
	i.companyID = id
	return nil
}

func (i *ServiceInstance) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("service ID", err)
	}
	i.serviceID = id
	return nil
}

func (i *ServiceInstance) setInstanceName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("instance name")
	}
	i.instanceName = name
	return nil
}

func (i *ServiceInstance) setBandwidth(bandwidthMbps int) error {
	if bandwidthMbps <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("bandwidth",
			fmt.Errorf("%d is not greater than 0", bandwidthMbps))
	}
	i.currentBandwidthMbps = bandwidthMbps
	return nil
}

// dateOf truncates a timestamp to its calendar day in UTC.
func dateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func derefOrNil(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
