package commands

import (
	"context"
	"time"

	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/order"
	"netondemand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SubmitOrderCommandHandler handles the business logic for order submission:
// catalog validation, ownership checks, order-number allocation, pricing,
// and completion-date estimation.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(uowFactory OrderUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command.
//
// The creation contract:
//  1. the service must exist and be orderable
//  2. for new/modify orders the requested bandwidth must fall within the
//     service's adjustable range
//  3. for modify/terminate orders the referenced instance must exist and
//     belong to the requesting company
//  4. the order number comes from the repository's atomic counter
//  5. total cost follows the order type's pricing formula
//  6. the estimated completion date is the requested date (defaulting to
//     tomorrow) plus the service's provisioning time rounded up to days
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	service, err := uow.ServiceCatalog().GetService(ctx, cmd.ServiceID())
	if err != nil {
		return err
	}
	if !service.IsOrderable() {
		return errs.NewServiceUnavailableError(service.ID())
	}

	params := cmd.Params()
	if cmd.OrderType().RequiresBandwidth() &&
		!service.IsValidBandwidth(params.RequestedBandwidthMbps) {
		return errs.NewBandwidthOutOfRangeError(
			derefOrNil(params.RequestedBandwidthMbps),
			derefOrNil(service.MinBandwidthMbps()),
			derefOrNil(service.MaxBandwidthMbps()))
	}

	var inst *instance.ServiceInstance
	if cmd.OrderType().RequiresInstance() {
		if params.ServiceInstanceID == nil {
			return errs.NewValueIsRequiredError("service instance ID")
		}
		inst, err = uow.ServiceInstanceRepository().Get(ctx, *params.ServiceInstanceID)
		if err != nil {
			return err
		}
		if !inst.CompanyID().IsEqual(cmd.CompanyID()) {
			return errs.NewAccessForbiddenError("service instance", inst.ID())
		}
	}

	seq, err := uow.OrderRepository().NextOrderSequence(ctx)
	if err != nil {
		return err
	}

	totalCost, err := h.totalCost(cmd.OrderType(), service, inst, params.RequestedBandwidthMbps)
	if err != nil {
		return err
	}

	requestedDate := defaultRequestedDate(params.RequestedDate)
	estimated := requestedDate.AddDate(0, 0, service.ProvisioningDays())

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CompanyID(), cmd.UserID(), cmd.ServiceID(),
		order.NumberFromSequence(seq), cmd.OrderType(), order.Params{
			ServiceInstanceID:       params.ServiceInstanceID,
			RequestedBandwidthMbps:  params.RequestedBandwidthMbps,
			TotalCost:               totalCost,
			RequestedDate:           requestedDate,
			EstimatedCompletionDate: &estimated,
			InstallationAddress:     params.InstallationAddress,
			PostalCode:              params.PostalCode,
			ContactName:             params.ContactName,
			ContactPhone:            params.ContactPhone,
			ContactEmail:            params.ContactEmail,
			Notes:                   params.Notes,
		})
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// totalCost applies the per-type pricing formula: new-service orders pay the
// monthly cost plus the setup fee, modify orders pay the signed monthly
// delta, terminate orders cost nothing.
func (h *SubmitOrderCommandHandler) totalCost(
	orderType order.OrderType,
	service *catalog.Service,
	inst *instance.ServiceInstance,
	requestedBandwidth *int,
) (decimal.Decimal, error) {
	switch orderType {
	case order.NewService:
		monthly, err := service.MonthlyCost(requestedBandwidth)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return monthly.Add(service.SetupFee()), nil

	case order.ModifyService:
		current := inst.CurrentBandwidthMbps()
		currentCost, err := service.MonthlyCost(&current)
		if err != nil {
			return decimal.Decimal{}, err
		}
		newCost, err := service.MonthlyCost(requestedBandwidth)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return newCost.Sub(currentCost), nil

	default:
		return decimal.Zero, nil
	}
}

// defaultRequestedDate returns the requested date, or tomorrow (UTC calendar
// day) when the customer did not pick one.
func defaultRequestedDate(requested *time.Time) time.Time {
	if requested != nil {
		return *requested
	}
	year, month, day := time.Now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}

func derefOrNil(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
