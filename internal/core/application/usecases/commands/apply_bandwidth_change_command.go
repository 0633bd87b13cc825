package commands

import (
	"errors"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"
	"netondemand/internal/pkg/guard"
)

// ErrApplyBandwidthChangeCommandIsNotConstructed is returned when an
// ApplyBandwidthChangeCommand was not created via the constructor.
var ErrApplyBandwidthChangeCommandIsNotConstructed = errors.New(
	"ApplyBandwidthChangeCommand must be created via NewApplyBandwidthChangeCommand constructor")

// ApplyBandwidthChangeCommand applies a pending or scheduled bandwidth change
// immediately, mutating the target instance's billed bandwidth.
type ApplyBandwidthChangeCommand struct { //nolint:recvcheck //using for validation
	changeID  kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApplyBandwidthChangeCommand creates a command to apply a change.
func NewApplyBandwidthChangeCommand(changeID, companyID kernel.UUID) (ApplyBandwidthChangeCommand, error) {
	cmd := ApplyBandwidthChangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setChangeID(changeID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return ApplyBandwidthChangeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyBandwidthChangeCommand) Validate() error {
	return c.guard.Validate(ErrApplyBandwidthChangeCommandIsNotConstructed)
}

// ChangeID returns the identifier of the change to apply.
func (c ApplyBandwidthChangeCommand) ChangeID() kernel.UUID {
	return c.changeID
}

// CompanyID returns the requesting company's identifier.
func (c ApplyBandwidthChangeCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *ApplyBandwidthChangeCommand) setChangeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.changeID = id
	return nil
}

func (c *ApplyBandwidthChangeCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company ID", err)
	}
	c.companyID = id
	return nil
}
