package queries

import (
	"context"
	"database/sql"
	"errors"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"
	"netondemand/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler resolves a single order by order number.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for order lookups.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no order
// with that number exists for the company.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (*GetOrderByNumberQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			order_type,
			status,
			service_id,
			service_instance_id,
			requested_bandwidth_mbps,
			total_cost,
			requested_date,
			estimated_completion_date,
			actual_completion_date
		FROM orders
		WHERE order_number = ? AND company_id = ?
	`, query.OrderNumber(), query.CompanyID().Bytes()).Row()

	var resp GetOrderByNumberQueryResponse
	var id, serviceID uuid.UUID
	var instanceID *uuid.UUID
	var orderType, status int
	var bandwidth sql.NullInt64
	var estimated, actual sql.NullTime

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&orderType,
		&status,
		&serviceID,
		&instanceID,
		&bandwidth,
		&resp.TotalCost,
		&resp.RequestedDate,
		&estimated,
		&actual,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderNumber())
	}
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	resp.ID = orderID

	svcID, err := kernel.UUIDFromBytes(serviceID[:])
	if err != nil {
		return nil, err
	}
	resp.ServiceID = svcID

	if instanceID != nil {
		instID, idErr := kernel.UUIDFromBytes((*instanceID)[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ServiceInstanceID = &instID
	}

	resp.OrderType = order.OrderType(orderType).String()
	resp.Status = order.Status(status).String()
	resp.RequestedBandwidthMbps = nullableInt(bandwidth)
	if estimated.Valid {
		t := estimated.Time
		resp.EstimatedCompletionDate = &t
	}
	if actual.Valid {
		t := actual.Time
		resp.ActualCompletionDate = &t
	}

	return &resp, nil
}
