package commands

import (
	"errors"
	"time"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"
	"netondemand/internal/pkg/guard"
)

// ErrScheduleBandwidthChangeCommandIsNotConstructed is returned when a
// ScheduleBandwidthChangeCommand was not created via the constructor.
var ErrScheduleBandwidthChangeCommandIsNotConstructed = errors.New(
	"ScheduleBandwidthChangeCommand must be created via NewScheduleBandwidthChangeCommand constructor")

// ScheduleBandwidthChangeCommand plans a pending bandwidth change for a
// specific time, typically a maintenance window.
type ScheduleBandwidthChangeCommand struct { //nolint:recvcheck //using for validation
	changeID  kernel.UUID
	companyID kernel.UUID
	at        time.Time

	guard guard.ConstructorGuard
}

// NewScheduleBandwidthChangeCommand creates a command to schedule a change.
func NewScheduleBandwidthChangeCommand(
	changeID, companyID kernel.UUID, at time.Time,
) (ScheduleBandwidthChangeCommand, error) {
	cmd := ScheduleBandwidthChangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setChangeID(changeID),
		cmd.setCompanyID(companyID),
		cmd.setAt(at),
	); err != nil {
		return ScheduleBandwidthChangeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleBandwidthChangeCommand) Validate() error {
	return c.guard.Validate(ErrScheduleBandwidthChangeCommandIsNotConstructed)
}

// ChangeID returns the identifier of the change to schedule.
func (c ScheduleBandwidthChangeCommand) ChangeID() kernel.UUID {
	return c.changeID
}

// CompanyID returns the requesting company's identifier.
func (c ScheduleBandwidthChangeCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// At returns when the change should be applied.
func (c ScheduleBandwidthChangeCommand) At() time.Time {
	return c.at
}

func (c *ScheduleBandwidthChangeCommand) setChangeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.changeID = id
	return nil
}

func (c *ScheduleBandwidthChangeCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company ID", err)
	}
	c.companyID = id
	return nil
}

func (c *ScheduleBandwidthChangeCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("scheduled time")
	}
	c.at = at
	return nil
}
