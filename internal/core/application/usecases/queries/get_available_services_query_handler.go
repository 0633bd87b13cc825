package queries

import (
	"context"
	"database/sql"

	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAvailableServicesQueryHandler retrieves orderable catalog entries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAvailableServicesQueryHandler(db)
//	query := NewGetAvailableServicesQuery()
//
//	services, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get services: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orderable services\n", len(services))
type GetAvailableServicesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableServicesQueryHandler creates a handler for catalog retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableServicesQueryHandler(db *gorm.DB) GetAvailableServicesQueryHandler {
	return GetAvailableServicesQueryHandler{db: db}
}

// Handle executes the query to retrieve all orderable services.
// Returns a slice of catalog read models sorted by name.
// Retired services (is_available = false) are filtered out.
func (h GetAvailableServicesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableServicesQuery,
) ([]GetAvailableServicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	services := make([]GetAvailableServicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			service_type,
			base_bandwidth_mbps,
			min_bandwidth_mbps,
			max_bandwidth_mbps,
			base_price_monthly,
			price_per_mbps,
			setup_fee,
			contract_term_months,
			is_bandwidth_adjustable,
			provisioning_time_hours
		FROM services
		WHERE is_available
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var service GetAvailableServicesQueryResponse
		var id uuid.UUID
		var serviceType int
		var baseBW, minBW, maxBW sql.NullInt64
		var basePrice, perMbps decimal.NullDecimal

		err = rows.Scan(
			&id,
			&service.Name,
			&serviceType,
			&baseBW,
			&minBW,
			&maxBW,
			&basePrice,
			&perMbps,
			&service.SetupFee,
			&service.ContractTermMonths,
			&service.IsBandwidthAdjustable,
			&service.ProvisioningTimeHours,
		)
		if err != nil {
			return nil, err
		}

		serviceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		service.ID = serviceID
		service.ServiceType = catalog.ServiceType(serviceType).String()
		service.BaseBandwidthMbps = nullableInt(baseBW)
		service.MinBandwidthMbps = nullableInt(minBW)
		service.MaxBandwidthMbps = nullableInt(maxBW)
		service.BasePriceMonthly = nullableDecimal(basePrice)
		service.PricePerMbps = nullableDecimal(perMbps)
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullableDecimal(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	return &v.Decimal
}
