package commands

import (
	"errors"
	"fmt"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"
	"netondemand/internal/pkg/guard"
)

// ErrRequestBandwidthChangeCommandIsNotConstructed is returned when a
// RequestBandwidthChangeCommand was not created via the constructor.
var ErrRequestBandwidthChangeCommandIsNotConstructed = errors.New(
	"RequestBandwidthChangeCommand must be created via NewRequestBandwidthChangeCommand constructor")

// RequestBandwidthChangeCommand represents a company's request to change the
// bandwidth of one of its active service instances. The change ID is
// generated by the caller so the operation is safe to retry.
type RequestBandwidthChangeCommand struct { //nolint:recvcheck //using for validation
	changeID         kernel.UUID
	instanceID       kernel.UUID
	companyID        kernel.UUID
	userID           kernel.UUID
	newBandwidthMbps int
	reason           string

	guard guard.ConstructorGuard
}

// NewRequestBandwidthChangeCommand creates a command to request a bandwidth change.
func NewRequestBandwidthChangeCommand(
	changeID kernel.UUID,
	instanceID kernel.UUID,
	companyID kernel.UUID,
	userID kernel.UUID,
	newBandwidthMbps int,
	reason string,
) (RequestBandwidthChangeCommand, error) {
	cmd := RequestBandwidthChangeCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setChangeID(changeID),
		cmd.setInstanceID(instanceID),
		cmd.setCompanyID(companyID),
		cmd.setUserID(userID),
		cmd.setNewBandwidth(newBandwidthMbps),
	); err != nil {
		return RequestBandwidthChangeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestBandwidthChangeCommand) Validate() error {
	return c.guard.Validate(ErrRequestBandwidthChangeCommandIsNotConstructed)
}

// ChangeID returns the unique identifier for the new change record.
func (c RequestBandwidthChangeCommand) ChangeID() kernel.UUID {
	return c.changeID
}

// InstanceID returns the target service instance's identifier.
func (c RequestBandwidthChangeCommand) InstanceID() kernel.UUID {
	return c.instanceID
}

// CompanyID returns the requesting company's identifier.
func (c RequestBandwidthChangeCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// UserID returns the requesting user's identifier.
func (c RequestBandwidthChangeCommand) UserID() kernel.UUID {
	return c.userID
}

// NewBandwidthMbps returns the bandwidth the company wants.
func (c RequestBandwidthChangeCommand) NewBandwidthMbps() int {
	return c.newBandwidthMbps
}

// Reason returns the free-form justification for the change.
func (c RequestBandwidthChangeCommand) Reason() string {
	return c.reason
}

func (c *RequestBandwidthChangeCommand) setChangeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.changeID = id
	return nil
}

func (c *RequestBandwidthChangeCommand) setInstanceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("service instance ID", err)
	}
	c.instanceID = id
	return nil
}

func (c *RequestBandwidthChangeCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company ID", err)
	}
	c.companyID = id
	return nil
}

func (c *RequestBandwidthChangeCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user ID", err)
	}
	c.userID = id
	return nil
}

func (c *RequestBandwidthChangeCommand) setNewBandwidth(bandwidthMbps int) error {
	if bandwidthMbps <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("new bandwidth",
			fmt.Errorf("%d is not greater than 0", bandwidthMbps))
	}
	c.newBandwidthMbps = bandwidthMbps
	return nil
}
