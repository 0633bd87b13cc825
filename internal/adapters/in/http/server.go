package http

import (
	"errors"
	"net/http"

	"netondemand/internal/core/application/usecases/commands"
	"netondemand/internal/core/application/usecases/queries"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"
	"netondemand/internal/generated/servers"
	"netondemand/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const (
	companyIDHeader = "X-Company-Id"
	userIDHeader    = "X-User-Id"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler             commands.SubmitOrderCommandHandler
	cancelOrderHandler             commands.CancelOrderCommandHandler
	requestBandwidthChangeHandler  commands.RequestBandwidthChangeCommandHandler
	scheduleBandwidthChangeHandler commands.ScheduleBandwidthChangeCommandHandler
	applyBandwidthChangeHandler    commands.ApplyBandwidthChangeCommandHandler
	cancelBandwidthChangeHandler   commands.CancelBandwidthChangeCommandHandler

	// Query handlers
	getAvailableServicesHandler queries.GetAvailableServicesQueryHandler
	getCompanyOrdersHandler     queries.GetCompanyOrdersQueryHandler
	getOrderByNumberHandler     queries.GetOrderByNumberQueryHandler
	getCompanyInstancesHandler  queries.GetCompanyInstancesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	requestBandwidthChangeHandler commands.RequestBandwidthChangeCommandHandler,
	scheduleBandwidthChangeHandler commands.ScheduleBandwidthChangeCommandHandler,
	applyBandwidthChangeHandler commands.ApplyBandwidthChangeCommandHandler,
	cancelBandwidthChangeHandler commands.CancelBandwidthChangeCommandHandler,
	getAvailableServicesHandler queries.GetAvailableServicesQueryHandler,
	getCompanyOrdersHandler queries.GetCompanyOrdersQueryHandler,
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler,
	getCompanyInstancesHandler queries.GetCompanyInstancesQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:             submitOrderHandler,
		cancelOrderHandler:             cancelOrderHandler,
		requestBandwidthChangeHandler:  requestBandwidthChangeHandler,
		scheduleBandwidthChangeHandler: scheduleBandwidthChangeHandler,
		applyBandwidthChangeHandler:    applyBandwidthChangeHandler,
		cancelBandwidthChangeHandler:   cancelBandwidthChangeHandler,
		getAvailableServicesHandler:    getAvailableServicesHandler,
		getCompanyOrdersHandler:        getCompanyOrdersHandler,
		getOrderByNumberHandler:        getOrderByNumberHandler,
		getCompanyInstancesHandler:     getCompanyInstancesHandler,
	}
}

// GetServices handles GET /api/v1/services - lists orderable catalog services.
func (s *Server) GetServices(ctx echo.Context) error {
	query := queries.NewGetAvailableServicesQuery()

	services, err := s.getAvailableServicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]servers.Service, len(services))
	for i, svc := range services {
		response[i] = servers.Service{
			Id:                    svc.ID.Bytes(),
			Name:                  svc.Name,
			ServiceType:           svc.ServiceType,
			BaseBandwidthMbps:     svc.BaseBandwidthMbps,
			MinBandwidthMbps:      svc.MinBandwidthMbps,
			MaxBandwidthMbps:      svc.MaxBandwidthMbps,
			BasePriceMonthly:      decimalString(svc.BasePriceMonthly),
			PricePerMbps:          decimalString(svc.PricePerMbps),
			SetupFee:              svc.SetupFee.StringFixed(2),
			ContractTermMonths:    svc.ContractTermMonths,
			IsBandwidthAdjustable: svc.IsBandwidthAdjustable,
			ProvisioningTimeHours: svc.ProvisioningTimeHours,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders - lists the company's orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	companyID, err := headerUUID(ctx, companyIDHeader)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetCompanyOrdersQuery(companyID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.getCompanyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:                      o.ID.Bytes(),
			OrderNumber:             o.OrderNumber,
			OrderType:               o.OrderType,
			Status:                  o.Status,
			ServiceId:               o.ServiceID.Bytes(),
			ServiceInstanceId:       uuidPtr(o.ServiceInstanceID),
			RequestedBandwidthMbps:  o.RequestedBandwidthMbps,
			TotalCost:               o.TotalCost.StringFixed(2),
			RequestedDate:           o.RequestedDate,
			EstimatedCompletionDate: o.EstimatedCompletionDate,
			ActualCompletionDate:    o.ActualCompletionDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByNumber handles GET /api/v1/orders/{orderNumber}.
func (s *Server) GetOrderByNumber(ctx echo.Context, orderNumber string) error {
	companyID, err := headerUUID(ctx, companyIDHeader)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetOrderByNumberQuery(companyID, orderNumber)
	if err != nil {
		return errorJSON(ctx, err)
	}

	o, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:                      o.ID.Bytes(),
		OrderNumber:             o.OrderNumber,
		OrderType:               o.OrderType,
		Status:                  o.Status,
		ServiceId:               o.ServiceID.Bytes(),
		ServiceInstanceId:       uuidPtr(o.ServiceInstanceID),
		RequestedBandwidthMbps:  o.RequestedBandwidthMbps,
		TotalCost:               o.TotalCost.StringFixed(2),
		RequestedDate:           o.RequestedDate,
		EstimatedCompletionDate: o.EstimatedCompletionDate,
		ActualCompletionDate:    o.ActualCompletionDate,
	})
}

// SubmitOrder handles POST /api/v1/orders - submits a connectivity order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	companyID, err := headerUUID(ctx, companyIDHeader)
	if err != nil {
		return errorJSON(ctx, err)
	}
	userID, err := headerUUID(ctx, userIDHeader)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var request servers.SubmitOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	serviceID, err := kernel.UUIDFromBytes(request.ServiceId[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	orderType, err := orderTypeFromWire(request.OrderType)
	if err != nil {
		return errorJSON(ctx, err)
	}

	params := commands.SubmitOrderParams{
		RequestedBandwidthMbps: request.RequestedBandwidthMbps,
		InstallationAddress:    stringValue(request.InstallationAddress),
		PostalCode:             stringValue(request.PostalCode),
		ContactName:            stringValue(request.ContactName),
		ContactPhone:           stringValue(request.ContactPhone),
		ContactEmail:           stringValue(request.ContactEmail),
		Notes:                  stringValue(request.Notes),
	}
	if request.ServiceInstanceId != nil {
		instanceID, idErr := kernel.UUIDFromBytes((*request.ServiceInstanceId)[:])
		if idErr != nil {
			return errorJSON(ctx, idErr)
		}
		params.ServiceInstanceID = &instanceID
	}
	if request.RequestedDate != nil {
		requested := request.RequestedDate.Time
		params.RequestedDate = &requested
	}

	// The order ID is generated here so a retried submission can reuse it.
	orderID := kernel.NewUUID()

	cmd, err := commands.NewSubmitOrderCommand(orderID, companyID, userID, serviceID, orderType, params)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	companyID, err := headerUUID(ctx, companyIDHeader)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, companyID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetServiceInstances handles GET /api/v1/service-instances.
func (s *Server) GetServiceInstances(ctx echo.Context) error {
	companyID, err := headerUUID(ctx, companyIDHeader)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetCompanyInstancesQuery(companyID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	instances, err := s.getCompanyInstancesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]servers.ServiceInstance, len(instances))
	for i, inst := range instances {
		address := inst.InstallationAddress

		response[i] = servers.ServiceInstance{
			Id:                   inst.ID.Bytes(),
			ServiceId:            inst.ServiceID.Bytes(),
			InstanceName:         inst.InstanceName,
			InstallationAddress:  &address,
			Status:               inst.Status,
			CurrentBandwidthMbps: inst.CurrentBandwidthMbps,
			MonthlyCost:          inst.MonthlyCost.StringFixed(2),
			ContractStartDate:    inst.ContractStartDate,
			ContractEndDate:      inst.ContractEndDate,
			ProvisionedAt:        inst.ProvisionedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RequestBandwidthChange handles POST /api/v1/service-instances/{instanceId}/bandwidth-changes.
func (s *Server) RequestBandwidthChange(ctx echo.Context, instanceId openapi_types.UUID) error {
	companyID, err := headerUUID(ctx, companyIDHeader)
	if err != nil {
		return errorJSON(ctx, err)
	}
	userID, err := headerUUID(ctx, userIDHeader)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var request servers.BandwidthChangeRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	instanceID, err := kernel.UUIDFromBytes(instanceId[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	changeID := kernel.NewUUID()

	cmd, err := commands.NewRequestBandwidthChangeCommand(
		changeID, instanceID, companyID, userID,
		request.NewBandwidthMbps, stringValue(request.Reason),
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.requestBandwidthChangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.BandwidthChangeCreated{Id: changeID.Bytes()})
}

// ScheduleBandwidthChange handles POST /api/v1/bandwidth-changes/{changeId}/schedule.
func (s *Server) ScheduleBandwidthChange(ctx echo.Context, changeId openapi_types.UUID) error {
	companyID, err := headerUUID(ctx, companyIDHeader)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var request servers.ScheduleBandwidthChangeRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	changeID, err := kernel.UUIDFromBytes(changeId[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewScheduleBandwidthChangeCommand(changeID, companyID, request.ScheduledAt)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.scheduleBandwidthChangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyBandwidthChange handles POST /api/v1/bandwidth-changes/{changeId}/apply.
func (s *Server) ApplyBandwidthChange(ctx echo.Context, changeId openapi_types.UUID) error {
	companyID, err := headerUUID(ctx, companyIDHeader)
	if err != nil {
		return errorJSON(ctx, err)
	}

	changeID, err := kernel.UUIDFromBytes(changeId[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewApplyBandwidthChangeCommand(changeID, companyID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.applyBandwidthChangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelBandwidthChange handles POST /api/v1/bandwidth-changes/{changeId}/cancel.
func (s *Server) CancelBandwidthChange(ctx echo.Context, changeId openapi_types.UUID) error {
	companyID, err := headerUUID(ctx, companyIDHeader)
	if err != nil {
		return errorJSON(ctx, err)
	}

	changeID, err := kernel.UUIDFromBytes(changeId[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCancelBandwidthChangeCommand(changeID, companyID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.cancelBandwidthChangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// headerUUID extracts a required identity header set by the fronting auth layer.
func headerUUID(ctx echo.Context, header string) (kernel.UUID, error) {
	value := ctx.Request().Header.Get(header)
	if value == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(header + " header")
	}

	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(header+" header", err)
	}
	return id, nil
}

// errorJSON maps application errors onto HTTP status codes and renders the
// shared error body.
func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAccessForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrServiceUnavailable),
		errors.Is(err, errs.ErrBandwidthOutOfRange):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrConcurrentModification):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func orderTypeFromWire(t servers.SubmitOrderRequestOrderType) (order.OrderType, error) {
	switch t {
	case servers.NewService:
		return order.NewService, nil
	case servers.ModifyService:
		return order.ModifyService, nil
	case servers.TerminateService:
		return order.TerminateService, nil
	default:
		return order.UnknownOrderType, errs.NewValueIsInvalidError("orderType")
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func uuidPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	value := id.Bytes()
	return &value
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
