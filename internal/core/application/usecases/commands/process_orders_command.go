package commands

import (
	"errors"

	"netondemand/internal/pkg/guard"
)

// ErrProcessOrdersCommandIsNotConstructed is returned when a
// ProcessOrdersCommand was not created via NewProcessOrdersCommand.
var ErrProcessOrdersCommandIsNotConstructed = errors.New(
	"ProcessOrdersCommand must be created via NewProcessOrdersCommand constructor")

// ProcessOrdersCommand represents a batch sweep over the order book: approve
// submitted orders, start approved ones, and complete in-progress orders
// whose estimated completion date has been reached. Driven by the order
// processing job.
type ProcessOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessOrdersCommand creates a command to process pending orders.
func NewProcessOrdersCommand() (ProcessOrdersCommand, error) {
	return ProcessOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrdersCommandIsNotConstructed)
}
