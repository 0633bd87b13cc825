package services

import (
	"fmt"
	"time"

	"netondemand/internal/core/domain/model/bandwidthchange"
	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"
	"netondemand/internal/pkg/errs"
)

// FulfilmentResult describes the side effects of fulfilling an order. The
// caller persists everything in the same transaction as the order itself.
type FulfilmentResult struct {
	// Instance is the service instance created or mutated by the order.
	Instance *instance.ServiceInstance

	// InstanceCreated reports whether Instance is new (new-service orders)
	// rather than an existing instance that was mutated.
	InstanceCreated bool

	// Change is the audited bandwidth change recorded for a modify-service
	// order, already applied. Nil for other order types.
	Change *bandwidthchange.BandwidthChange
}

// OrderFulfiller applies the business effects of a completing order:
//   - a new-service order creates a pending service instance for the company
//   - a modify-service order records an applied bandwidth change, which
//     mutates the instance's billed bandwidth and monthly cost
//   - a terminate-service order terminates the instance
type OrderFulfiller struct{}

// NewOrderFulfiller creates a new OrderFulfiller instance.
func NewOrderFulfiller() OrderFulfiller {
	return OrderFulfiller{}
}

// Fulfil executes the order's effects against the target service and, for
// modify/terminate orders, the target instance (nil for new-service orders).
// It does not transition the order itself; the caller completes the order and
// persists the result.
func (f OrderFulfiller) Fulfil(
	o *order.Order,
	service *catalog.Service,
	inst *instance.ServiceInstance,
	now time.Time,
) (*FulfilmentResult, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := service.Validate(); err != nil {
		return nil, err
	}

	switch o.OrderType() {
	case order.NewService:
		return f.createInstance(o, service)
	case order.ModifyService:
		return f.modifyInstance(o, service, inst, now)
	case order.TerminateService:
		return f.terminateInstance(o, inst)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%s cannot be fulfilled", o.OrderType()))
	}
}

func (f OrderFulfiller) createInstance(
	o *order.Order, service *catalog.Service,
) (*FulfilmentResult, error) {
	monthlyCost, err := service.MonthlyCost(o.RequestedBandwidthMbps())
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s (%s)", service.Name(), o.OrderNumber())
	inst, err := instance.NewServiceInstance(
		kernel.NewUUID(), o.CompanyID(), service.ID(), name,
		o.InstallationAddress(), *o.RequestedBandwidthMbps(), monthlyCost)
	if err != nil {
		return nil, err
	}

	if err = o.AttachServiceInstance(inst.ID()); err != nil {
		return nil, err
	}

	return &FulfilmentResult{Instance: inst, InstanceCreated: true}, nil
}

func (f OrderFulfiller) modifyInstance(
	o *order.Order, service *catalog.Service, inst *instance.ServiceInstance, now time.Time,
) (*FulfilmentResult, error) {
	if err := f.checkOwnership(o, inst); err != nil {
		return nil, err
	}

	previous := inst.CurrentBandwidthMbps()
	requested := o.RequestedBandwidthMbps()

	previousCost, err := service.MonthlyCost(&previous)
	if err != nil {
		return nil, err
	}
	newCost, err := service.MonthlyCost(requested)
	if err != nil {
		return nil, err
	}

	change, err := bandwidthchange.NewBandwidthChange(
		kernel.NewUUID(), inst.ID(), o.UserID(),
		previous, *requested, newCost.Sub(previousCost),
		fmt.Sprintf("Order %s", o.OrderNumber()))
	if err != nil {
		return nil, err
	}

	if err = change.Apply(inst, service, now); err != nil {
		return nil, err
	}

	return &FulfilmentResult{Instance: inst, Change: change}, nil
}

func (f OrderFulfiller) terminateInstance(
	o *order.Order, inst *instance.ServiceInstance,
) (*FulfilmentResult, error) {
	if err := f.checkOwnership(o, inst); err != nil {
		return nil, err
	}

	if err := inst.Terminate(); err != nil {
		return nil, err
	}

	return &FulfilmentResult{Instance: inst}, nil
}

func (f OrderFulfiller) checkOwnership(o *order.Order, inst *instance.ServiceInstance) error {
	if err := inst.Validate(); err != nil {
		return err
	}
	if !inst.CompanyID().IsEqual(o.CompanyID()) {
		return errs.NewAccessForbiddenError("service instance", inst.ID())
	}
	return nil
}
