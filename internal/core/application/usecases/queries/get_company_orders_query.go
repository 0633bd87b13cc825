package queries

import (
	"errors"
	"time"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"
	"netondemand/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCompanyOrdersQueryIsNotConstructed = errors.New(
		"GetCompanyOrdersQuery must be created via NewGetCompanyOrdersQuery constructor",
	)
)

// GetCompanyOrdersQuery retrieves every order a company has placed, newest first.
// Returns the order history a customer sees on the portal dashboard.
//
// Example:
//
//	query, err := NewGetCompanyOrdersQuery(companyID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := NewGetCompanyOrdersQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetCompanyOrdersQuery struct {
	guard guard.ConstructorGuard

	companyID kernel.UUID
}

// NewGetCompanyOrdersQuery creates a query scoped to a single company.
func NewGetCompanyOrdersQuery(companyID kernel.UUID) (GetCompanyOrdersQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetCompanyOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("companyID", err)
	}

	return GetCompanyOrdersQuery{
		guard:     guard.NewConstructorGuard(),
		companyID: companyID,
	}, nil
}

// CompanyID returns the company whose orders are requested.
func (q GetCompanyOrdersQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCompanyOrdersQueryIsNotConstructed if validation fails.
func (q GetCompanyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyOrdersQueryIsNotConstructed)
}

// GetCompanyOrdersQueryResponse represents one order in the company's history.
// Type and status are rendered as their wire strings for direct display.
type GetCompanyOrdersQueryResponse struct {
	ID                      kernel.UUID
	OrderNumber             string
	OrderType               string
	Status                  string
	ServiceID               kernel.UUID
	ServiceInstanceID       *kernel.UUID
	RequestedBandwidthMbps  *int
	TotalCost               decimal.Decimal
	RequestedDate           time.Time
	EstimatedCompletionDate *time.Time
	ActualCompletionDate    *time.Time
}
