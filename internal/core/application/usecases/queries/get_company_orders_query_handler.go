package queries

import (
	"context"
	"database/sql"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCompanyOrdersQueryHandler retrieves a company's order history from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCompanyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCompanyOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetCompanyOrdersQueryHandler(db *gorm.DB) GetCompanyOrdersQueryHandler {
	return GetCompanyOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the company's orders.
// Order numbers come from a monotonic sequence, so sorting on them
// descending yields newest-first without a creation timestamp.
func (h GetCompanyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyOrdersQuery,
) ([]GetCompanyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCompanyOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE company_id = ?
		ORDER BY order_number DESC
	`, query.CompanyID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCompanyOrdersQueryResponse
		var id, serviceID uuid.UUID
		var instanceID *uuid.UUID
		var orderType, status int
		var bandwidth sql.NullInt64
		var estimated, actual sql.NullTime

		err = rows.Scan(
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
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		svcID, idErr := kernel.UUIDFromBytes(serviceID[:])
		if idErr != nil {
			return nil, idErr
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
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
