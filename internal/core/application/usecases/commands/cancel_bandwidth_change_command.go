package commands

import (
	"errors"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"
	"netondemand/internal/pkg/guard"
)

// ErrCancelBandwidthChangeCommandIsNotConstructed is returned when a
// CancelBandwidthChangeCommand was not created via the constructor.
var ErrCancelBandwidthChangeCommandIsNotConstructed = errors.New(
	"CancelBandwidthChangeCommand must be created via NewCancelBandwidthChangeCommand constructor")

// CancelBandwidthChangeCommand withdraws a pending or scheduled bandwidth
// change before it applies.
type CancelBandwidthChangeCommand struct { //nolint:recvcheck //using for validation
	changeID  kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelBandwidthChangeCommand creates a command to cancel a change.
func NewCancelBandwidthChangeCommand(changeID, companyID kernel.UUID) (CancelBandwidthChangeCommand, error) {
	cmd := CancelBandwidthChangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setChangeID(changeID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return CancelBandwidthChangeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBandwidthChangeCommand) Validate() error {
	return c.guard.Validate(ErrCancelBandwidthChangeCommandIsNotConstructed)
}

// ChangeID returns the identifier of the change to cancel.
func (c CancelBandwidthChangeCommand) ChangeID() kernel.UUID {
	return c.changeID
}

// CompanyID returns the requesting company's identifier.
func (c CancelBandwidthChangeCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *CancelBandwidthChangeCommand) setChangeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.changeID = id
	return nil
}

func (c *CancelBandwidthChangeCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company ID", err)
	}
	c.companyID = id
	return nil
}
