package commands

import (
	"errors"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/guard"
)

// ErrProvisionInstanceCommandIsNotConstructed is returned when a
// ProvisionInstanceCommand was not created via NewProvisionInstanceCommand.
var ErrProvisionInstanceCommandIsNotConstructed = errors.New(
	"ProvisionInstanceCommand must be created via NewProvisionInstanceCommand constructor")

// ProvisionInstanceCommand represents an activation trigger for a pending or
// in-provisioning service instance, e.g. a network provisioning callback.
type ProvisionInstanceCommand struct { //nolint:recvcheck //using for validation
	instanceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProvisionInstanceCommand creates a command to provision an instance.
func NewProvisionInstanceCommand(instanceID kernel.UUID) (ProvisionInstanceCommand, error) {
	cmd := ProvisionInstanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInstanceID(instanceID); err != nil {
		return ProvisionInstanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProvisionInstanceCommand) Validate() error {
	return c.guard.Validate(ErrProvisionInstanceCommandIsNotConstructed)
}

// InstanceID returns the identifier of the instance to provision.
func (c ProvisionInstanceCommand) InstanceID() kernel.UUID {
	return c.instanceID
}

func (c *ProvisionInstanceCommand) setInstanceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.instanceID = id
	return nil
}
