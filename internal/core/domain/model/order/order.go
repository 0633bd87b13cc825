package order

import (
	"errors"
	"fmt"
	"time"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New(
	"Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a company's request to create, modify, or
// terminate a service instance.
//
// Invariants:
//   - requestedBandwidthMbps is non-nil for NewService/ModifyService orders
//     and nil for TerminateService orders
//   - ModifyService/TerminateService orders always reference a service
//     instance; ownership of that instance is checked by the use case before
//     construction
//   - The order number is unique and assigned exactly once, at creation
//   - Status transitions follow the rules defined on Status
type Order struct {
	id                kernel.UUID
	companyID         kernel.UUID
	userID            kernel.UUID
	serviceID         kernel.UUID
	serviceInstanceID *kernel.UUID

	orderNumber            string
	orderType              OrderType
	status                 Status
	requestedBandwidthMbps *int

	// totalCost is signed: a bandwidth decrease on a modify order yields a
	// negative cost, and terminate orders cost zero.
	totalCost decimal.Decimal

	requestedDate           time.Time
	estimatedCompletionDate *time.Time
	actualCompletionDate    *time.Time

	installationAddress string
	postalCode          string
	contactName         string
	contactPhone        string
	contactEmail        string
	notes               string
	workflowID          string

	isConstructed bool
}

// Params carries the optional and type-dependent fields of a new order.
// The per-type required-field rules are enforced by NewOrder.
type Params struct {
	ServiceInstanceID       *kernel.UUID
	RequestedBandwidthMbps  *int
	TotalCost               decimal.Decimal
	RequestedDate           time.Time
	EstimatedCompletionDate *time.Time
	InstallationAddress     string
	PostalCode              string
	ContactName             string
	ContactPhone            string
	ContactEmail            string
	Notes                   string
	WorkflowID              string
}

// NewOrder creates an Order in Submitted status, enforcing the per-type
// required-field rules: new-service and modify-service orders must carry a
// positive requested bandwidth, terminate-service orders must not carry one,
// and modify/terminate orders must reference a service instance.
func NewOrder(
	id kernel.UUID,
	companyID kernel.UUID,
	userID kernel.UUID,
	serviceID kernel.UUID,
	orderNumber string,
	orderType OrderType,
	params Params,
) (*Order, error) {
	o := &Order{
		status:        Submitted,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCompanyID(companyID),
		o.setUserID(userID),
		o.setServiceID(serviceID),
		o.setOrderNumber(orderNumber),
		o.setOrderType(orderType),
		o.setTypedFields(orderType, params),
	); err != nil {
		return nil, err
	}

	o.totalCost = params.TotalCost
	o.requestedDate = params.RequestedDate
	o.estimatedCompletionDate = params.EstimatedCompletionDate
	o.installationAddress = params.InstallationAddress
	o.postalCode = params.PostalCode
	o.contactName = params.ContactName
	o.contactPhone = params.ContactPhone
	o.contactEmail = params.ContactEmail
	o.notes = params.Notes
	o.workflowID = params.WorkflowID
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// Used by repository implementations only.
func RestoreOrder(
	id kernel.UUID,
	companyID kernel.UUID,
	userID kernel.UUID,
	serviceID kernel.UUID,
	orderNumber string,
	orderType OrderType,
	status Status,
	params Params,
	actualCompletionDate *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, companyID, userID, serviceID, orderNumber, orderType, params)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.actualCompletionDate = actualCompletionDate
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CompanyID returns the owning company's identifier.
func (o *Order) CompanyID() kernel.UUID {
	return o.companyID
}

// UserID returns the requesting user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ServiceID returns the target catalog service's identifier.
func (o *Order) ServiceID() kernel.UUID {
	return o.serviceID
}

// ServiceInstanceID returns the target service instance's identifier.
// Nil for new-service orders until fulfilment creates the instance.
func (o *Order) ServiceInstanceID() *kernel.UUID {
	return o.serviceInstanceID
}

// OrderNumber returns the customer-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// OrderType returns what this order does to a service instance.
func (o *Order) OrderType() OrderType {
	return o.orderType
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// RequestedBandwidthMbps returns the requested bandwidth.
// Nil for terminate-service orders.
func (o *Order) RequestedBandwidthMbps() *int {
	return o.requestedBandwidthMbps
}

// TotalCost returns the signed total cost of the order.
func (o *Order) TotalCost() decimal.Decimal {
	return o.totalCost
}

// RequestedDate returns when the customer asked for the change to take effect.
func (o *Order) RequestedDate() time.Time {
	return o.requestedDate
}

// EstimatedCompletionDate returns the projected completion date, nil if unset.
func (o *Order) EstimatedCompletionDate() *time.Time {
	return o.estimatedCompletionDate
}

// ActualCompletionDate returns when the order completed, nil before that.
func (o *Order) ActualCompletionDate() *time.Time {
	return o.actualCompletionDate
}

// InstallationAddress returns the delivery address for new-service orders.
func (o *Order) InstallationAddress() string {
	return o.installationAddress
}

// PostalCode returns the installation address postal code.
func (o *Order) PostalCode() string {
	return o.postalCode
}

// ContactName returns the on-site contact person.
func (o *Order) ContactName() string {
	return o.contactName
}

// ContactPhone returns the on-site contact phone number.
func (o *Order) ContactPhone() string {
	return o.contactPhone
}

// ContactEmail returns the on-site contact email address.
func (o *Order) ContactEmail() string {
	return o.contactEmail
}

// Notes returns free-form notes, including appended failure reasons.
func (o *Order) Notes() string {
	return o.notes
}

// WorkflowID returns the opaque external workflow correlation identifier.
func (o *Order) WorkflowID() string {
	return o.workflowID
}

// AttachServiceInstance links the order to the service instance created
// during fulfilment of a new-service order.
func (o *Order) AttachServiceInstance(instanceID kernel.UUID) error {
	if err := instanceID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("service instance ID", err)
	}
	o.serviceInstanceID = &instanceID
	return nil
}

// Approve moves a submitted order to Approved. Idempotent: in any other
// state it reports false and leaves the order unchanged.
func (o *Order) Approve() bool {
	newStatus, applied := o.status.Approve()
	o.status = newStatus
	return applied
}

// StartProcessing moves an approved order to InProgress. Idempotent: in any
// other state it reports false and leaves the order unchanged.
func (o *Order) StartProcessing() bool {
	newStatus, applied := o.status.StartProcessing()
	o.status = newStatus
	return applied
}

// Complete moves an in-progress order to Completed and stamps the actual
// completion date. Idempotent: in any other state it reports false and
// leaves the order unchanged.
func (o *Order) Complete(now time.Time) bool {
	newStatus, applied := o.status.Complete()
	if !applied {
		return false
	}

	o.status = newStatus
	completedAt := now
	o.actualCompletionDate = &completedAt
	return true
}

// CanCancel reports whether the order may still be cancelled.
func (o *Order) CanCancel() bool {
	return o.status.CanCancel()
}

// Cancel withdraws the order. Returns InvalidStateError unless the order is
// Submitted or Approved.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Fail marks the order as failed and appends the reason to its notes.
// Returns InvalidStateError from a terminal state.
func (o *Order) Fail(reason string) error {
	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	note := fmt.Sprintf("Failed: %s", reason)
	if o.notes == "" {
		o.notes = note
	} else {
		o.notes = o.notes + "\n" + note
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company ID", err)
	}
	o.companyID = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user ID", err)
	}
	o.userID = id
	return nil
}

func (o *Order) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("service ID", err)
	}
	o.serviceID = id
	return nil
}

func (o *Order) setOrderNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = number
	return nil
}

func (o *Order) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

// setTypedFields enforces the per-type required-field rules and copies the
// type-dependent fields.
func (o *Order) setTypedFields(orderType OrderType, params Params) error {
	if err := orderType.Validate(); err != nil {
		// setOrderType already reports this.
		return nil
	}

	if orderType.RequiresBandwidth() {
		if params.RequestedBandwidthMbps == nil {
			return errs.NewValueIsRequiredError(
				fmt.Sprintf("requested bandwidth for %s order", orderType))
		}
		if *params.RequestedBandwidthMbps <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("requested bandwidth",
				fmt.Errorf("%d is not greater than 0", *params.RequestedBandwidthMbps))
		}
	} else if params.RequestedBandwidthMbps != nil {
		return errs.NewValueIsInvalidErrorWithCause("requested bandwidth",
			fmt.Errorf("must not be set for %s order", orderType))
	}

	if orderType.RequiresInstance() && params.ServiceInstanceID == nil {
		return errs.NewValueIsRequiredError(
			fmt.Sprintf("service instance ID for %s order", orderType))
	}
	if params.ServiceInstanceID != nil {
		if err := params.ServiceInstanceID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("service instance ID", err)
		}
	}

	o.requestedBandwidthMbps = params.RequestedBandwidthMbps
	o.serviceInstanceID = params.ServiceInstanceID
	return nil
}
