package bandwidthchange

import (
	"errors"
	"fmt"
	"time"

	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrBandwidthChangeIsNotConstructed is returned when a BandwidthChange was
// not created through NewBandwidthChange or RestoreBandwidthChange.
var ErrBandwidthChangeIsNotConstructed = errors.New(
	"BandwidthChange must be created via NewBandwidthChange or RestoreBandwidthChange constructor")

// BandwidthChange is the aggregate root for an audited bandwidth mutation
// against a service instance. It records the previous and new bandwidth, the
// signed monthly cost impact, and who requested it.
//
// Applying a change is the only path, besides direct modify-order completion,
// by which an instance's billed bandwidth may change.
type BandwidthChange struct {
	id                    kernel.UUID
	serviceInstanceID     kernel.UUID
	requestedByUserID     kernel.UUID
	previousBandwidthMbps int
	newBandwidthMbps      int
	costImpact            decimal.Decimal
	reason                string
	status                Status

	scheduledAt *time.Time
	appliedAt   *time.Time

	isConstructed bool
}

// NewBandwidthChange creates a BandwidthChange in Pending status. The cost
// impact must already be computed from the service's pricing as
// monthlyCost(new) - monthlyCost(previous); the workflows do this before
// constructing the change. A new bandwidth equal to the previous one is
// permitted and is neither an increase nor a decrease.
func NewBandwidthChange(
	id kernel.UUID,
	serviceInstanceID kernel.UUID,
	requestedByUserID kernel.UUID,
	previousBandwidthMbps int,
	newBandwidthMbps int,
	costImpact decimal.Decimal,
	reason string,
) (*BandwidthChange, error) {
	c := &BandwidthChange{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setServiceInstanceID(serviceInstanceID),
		c.setRequestedByUserID(requestedByUserID),
		c.setBandwidths(previousBandwidthMbps, newBandwidthMbps),
	); err != nil {
		return nil, err
	}

	c.costImpact = costImpact
	c.reason = reason
	return c, nil
}

// RestoreBandwidthChange reconstructs a BandwidthChange from persistence with
// its full state. Used by repository implementations only.
func RestoreBandwidthChange(
	id kernel.UUID,
	serviceInstanceID kernel.UUID,
	requestedByUserID kernel.UUID,
	previousBandwidthMbps int,
	newBandwidthMbps int,
	costImpact decimal.Decimal,
	reason string,
	status Status,
	scheduledAt *time.Time,
	appliedAt *time.Time,
) (*BandwidthChange, error) {
	c, err := NewBandwidthChange(
		id, serviceInstanceID, requestedByUserID,
		previousBandwidthMbps, newBandwidthMbps, costImpact, reason)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	c.status = status
	c.scheduledAt = scheduledAt
	c.appliedAt = appliedAt
	return c, nil
}

// Validate ensures the change was created through a constructor.
func (c *BandwidthChange) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrBandwidthChangeIsNotConstructed
	}
	return nil
}

// IsEqual compares two changes by their unique identifiers.
func (c *BandwidthChange) IsEqual(other *BandwidthChange) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the change's unique identifier.
func (c *BandwidthChange) ID() kernel.UUID {
	return c.id
}

// ServiceInstanceID returns the target service instance's identifier.
func (c *BandwidthChange) ServiceInstanceID() kernel.UUID {
	return c.serviceInstanceID
}

// RequestedByUserID returns the identifier of the user who requested the change.
func (c *BandwidthChange) RequestedByUserID() kernel.UUID {
	return c.requestedByUserID
}

// PreviousBandwidthMbps returns the bandwidth before the change.
func (c *BandwidthChange) PreviousBandwidthMbps() int {
	return c.previousBandwidthMbps
}

// NewBandwidthMbps returns the bandwidth the change applies.
func (c *BandwidthChange) NewBandwidthMbps() int {
	return c.newBandwidthMbps
}

// CostImpact returns the signed monthly cost delta of the change.
func (c *BandwidthChange) CostImpact() decimal.Decimal {
	return c.costImpact
}

// Reason returns the free-form justification supplied by the requester.
func (c *BandwidthChange) Reason() string {
	return c.reason
}

// Status returns the current lifecycle status.
func (c *BandwidthChange) Status() Status {
	return c.status
}

// ScheduledAt returns when the change is planned to apply, nil if unscheduled.
func (c *BandwidthChange) ScheduledAt() *time.Time {
	return c.scheduledAt
}

// AppliedAt returns when the change applied, nil before that.
func (c *BandwidthChange) AppliedAt() *time.Time {
	return c.appliedAt
}

// IsIncrease reports whether the change raises the bandwidth.
func (c *BandwidthChange) IsIncrease() bool {
	return c.newBandwidthMbps > c.previousBandwidthMbps
}

// IsDecrease reports whether the change lowers the bandwidth.
func (c *BandwidthChange) IsDecrease() bool {
	return c.newBandwidthMbps < c.previousBandwidthMbps
}

// Schedule plans the change for a future time and stamps scheduledAt.
// Returns InvalidStateError unless the change is Pending.
func (c *BandwidthChange) Schedule(at time.Time) error {
	newStatus, err := c.status.Schedule()
	if err != nil {
		return err
	}

	c.status = newStatus
	scheduledAt := at
	c.scheduledAt = &scheduledAt
	return nil
}

// Apply mutates the target instance's bandwidth with the change's new value,
// transitions the change to Applied, and stamps appliedAt. The change and the
// mutated instance must be persisted in the same transaction.
//
// Returns InvalidStateError unless the change is Pending or Scheduled, or if
// the instance is not eligible for adjustment; the change is left untouched
// when the instance mutation fails so it can be retried or failed explicitly.
func (c *BandwidthChange) Apply(
	inst *instance.ServiceInstance, service *catalog.Service, now time.Time,
) error {
	if err := inst.Validate(); err != nil {
		return err
	}
	if !inst.ID().IsEqual(c.serviceInstanceID) {
		return errs.NewValueIsInvalidErrorWithCause("service instance",
			fmt.Errorf("change targets instance %s, got %s", c.serviceInstanceID, inst.ID()))
	}

	newStatus, err := c.status.Apply()
	if err != nil {
		return err
	}

	if !inst.CanAdjustBandwidth(service) {
		return errs.NewInvalidStateError("service instance", "adjust bandwidth", inst.Status().String())
	}
	if err = inst.UpdateBandwidth(service, c.newBandwidthMbps, now); err != nil {
		return err
	}

	c.status = newStatus
	appliedAt := now
	c.appliedAt = &appliedAt
	return nil
}

// Cancel withdraws the change. Legal only from Pending and Scheduled.
func (c *BandwidthChange) Cancel() error {
	newStatus, err := c.status.Cancel()
	if err != nil {
		return err
	}
	c.status = newStatus
	return nil
}

// Fail records that the change could not be applied.
func (c *BandwidthChange) Fail() error {
	newStatus, err := c.status.Fail()
	if err != nil {
		return err
	}
	c.status = newStatus
	return nil
}

func (c *BandwidthChange) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *BandwidthChange) setServiceInstanceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("service instance ID", err)
	}
	c.serviceInstanceID = id
	return nil
}

func (c *BandwidthChange) setRequestedByUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user ID", err)
	}
	c.requestedByUserID = id
	return nil
}

func (c *BandwidthChange) setBandwidths(previous, next int) error {
	if previous <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("previous bandwidth",
			fmt.Errorf("%d is not greater than 0", previous))
	}
	if next <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("new bandwidth",
			fmt.Errorf("%d is not greater than 0", next))
	}
	c.previousBandwidthMbps = previous
	c.newBandwidthMbps = next
	return nil
}
