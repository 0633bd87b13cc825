// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAvailableServicesQueryIsNotConstructed = errors.New(
		"GetAvailableServicesQuery must be created via NewGetAvailableServicesQuery constructor",
	)
)

// GetAvailableServicesQuery retrieves the orderable part of the service catalog.
// Returns pricing and bandwidth bounds so customers can compose an order.
//
// Example:
//
//	query := NewGetAvailableServicesQuery()
//	handler := NewGetAvailableServicesQueryHandler(db)
//
//	services, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve services: %w", err)
//	}
//
//	for _, service := range services {
//	    fmt.Printf("%s: %s/month\n", service.Name, service.BasePriceMonthly)
//	}
type GetAvailableServicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableServicesQuery creates a query to retrieve the available catalog.
// This is a parameterless query that fetches every orderable service.
func NewGetAvailableServicesQuery() GetAvailableServicesQuery {
	return GetAvailableServicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableServicesQueryIsNotConstructed if validation fails.
func (q GetAvailableServicesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableServicesQueryIsNotConstructed)
}

// GetAvailableServicesQueryResponse represents one catalog entry in the read model.
// Nullable bandwidth and pricing columns stay pointers: non-adjustable products
// such as dedicated lines carry no per-Mbps price.
type GetAvailableServicesQueryResponse struct {
	ID                    kernel.UUID
	Name                  string
	ServiceType           string
	BaseBandwidthMbps     *int
	MinBandwidthMbps      *int
	MaxBandwidthMbps      *int
	BasePriceMonthly      *decimal.Decimal
	PricePerMbps          *decimal.Decimal
	SetupFee              decimal.Decimal
	ContractTermMonths    int
	IsBandwidthAdjustable bool
	ProvisioningTimeHours int
}
