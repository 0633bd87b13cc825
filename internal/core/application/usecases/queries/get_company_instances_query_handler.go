package queries

import (
	"context"
	"database/sql"

	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCompanyInstancesQueryHandler retrieves a company's service instances from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCompanyInstancesQueryHandler struct {
	db *gorm.DB
}

// NewGetCompanyInstancesQueryHandler creates a handler for instance listing queries.
// Requires a GORM database connection for query execution.
func NewGetCompanyInstancesQueryHandler(db *gorm.DB) GetCompanyInstancesQueryHandler {
	return GetCompanyInstancesQueryHandler{db: db}
}

// Handle executes the query to retrieve the company's service instances.
// Returns instance read models sorted by instance name.
func (h GetCompanyInstancesQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyInstancesQuery,
) ([]GetCompanyInstancesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	instances := make([]GetCompanyInstancesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			service_id,
			instance_name,
			installation_address,
			status,
			current_bandwidth_mbps,
			monthly_cost,
			contract_start_date,
			contract_end_date,
			provisioned_at
		FROM service_instances
		WHERE company_id = ?
		ORDER BY instance_name
	`, query.CompanyID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCompanyInstancesQueryResponse
		var id, serviceID uuid.UUID
		var status int
		var contractStart, contractEnd, provisionedAt sql.NullTime

		err = rows.Scan(
			&id,
			&serviceID,
			&resp.InstanceName,
			&resp.InstallationAddress,
			&status,
			&resp.CurrentBandwidthMbps,
			&resp.MonthlyCost,
			&contractStart,
			&contractEnd,
			&provisionedAt,
		)
		if err != nil {
			return nil, err
		}

		instanceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = instanceID

		svcID, idErr := kernel.UUIDFromBytes(serviceID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ServiceID = svcID

		resp.Status = instance.Status(status).String()
		if contractStart.Valid {
			t := contractStart.Time
			resp.ContractStartDate = &t
		}
		if contractEnd.Valid {
			t := contractEnd.Time
			resp.ContractEndDate = &t
		}
		if provisionedAt.Valid {
			t := provisionedAt.Time
			resp.ProvisionedAt = &t
		}
		instances = append(instances, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return instances, nil
}
