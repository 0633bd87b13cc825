package commands

import (
	"errors"

	"netondemand/internal/pkg/guard"
)

// ErrApplyScheduledChangesCommandIsNotConstructed is returned when an
// ApplyScheduledChangesCommand was not created via the constructor.
var ErrApplyScheduledChangesCommandIsNotConstructed = errors.New(
	"ApplyScheduledChangesCommand must be created via NewApplyScheduledChangesCommand constructor")

// ApplyScheduledChangesCommand represents a batch sweep over scheduled
// bandwidth changes whose scheduled time has arrived. Driven by the
// bandwidth-change application job.
type ApplyScheduledChangesCommand struct {
	guard guard.ConstructorGuard
}

// NewApplyScheduledChangesCommand creates a command to apply due scheduled changes.
func NewApplyScheduledChangesCommand() (ApplyScheduledChangesCommand, error) {
	return ApplyScheduledChangesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyScheduledChangesCommand) Validate() error {
	return c.guard.Validate(ErrApplyScheduledChangesCommandIsNotConstructed)
}
