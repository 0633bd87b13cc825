package commands

import (
	"errors"
	"time"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"
	"netondemand/internal/pkg/errs"
	"netondemand/internal/pkg/guard"
)

// ErrSubmitOrderCommandIsNotConstructed is returned when a SubmitOrderCommand
// was not created via NewSubmitOrderCommand.
var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor")

// SubmitOrderParams carries the optional and type-dependent fields of an
// order submission. Per-type required-field rules are enforced when the
// Order aggregate is constructed.
type SubmitOrderParams struct {
	ServiceInstanceID      *kernel.UUID
	RequestedBandwidthMbps *int
	RequestedDate          *time.Time
	InstallationAddress    string
	PostalCode             string
	ContactName            string
	ContactPhone           string
	ContactEmail           string
	Notes                  string
}

// SubmitOrderCommand represents a company's request to place an order against
// a catalog service. The identity fields come from the authenticated caller's
// context; the order ID is generated by the caller so the operation is safe
// to retry.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	companyID kernel.UUID
	userID    kernel.UUID
	serviceID kernel.UUID
	orderType order.OrderType
	params    SubmitOrderParams

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new order.
// Validates the identity and target identifiers and the order type; the
// type-specific field rules are checked by the Order constructor.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	companyID kernel.UUID,
	userID kernel.UUID,
	serviceID kernel.UUID,
	orderType order.OrderType,
	params SubmitOrderParams,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCompanyID(companyID),
		cmd.setUserID(userID),
		cmd.setServiceID(serviceID),
		cmd.setOrderType(orderType),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CompanyID returns the requesting company's identifier.
func (c SubmitOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// UserID returns the requesting user's identifier.
func (c SubmitOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ServiceID returns the target catalog service's identifier.
func (c SubmitOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// OrderType returns what the order does to a service instance.
func (c SubmitOrderCommand) OrderType() order.OrderType {
	return c.orderType
}

// Params returns the optional and type-dependent submission fields.
func (c SubmitOrderCommand) Params() SubmitOrderParams {
	return c.params
}

func (c *SubmitOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *SubmitOrderCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company ID", err)
	}
	c.companyID = id
	return nil
}

func (c *SubmitOrderCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user ID", err)
	}
	c.userID = id
	return nil
}

func (c *SubmitOrderCommand) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("service ID", err)
	}
	c.serviceID = id
	return nil
}

func (c *SubmitOrderCommand) setOrderType(orderType order.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}
