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
	ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
		"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
	)
)

// GetOrderByNumberQuery looks up a single order by its human-facing order
// number. The lookup is scoped to the requesting company, so an order
// belonging to someone else behaves as if it does not exist.
type GetOrderByNumberQuery struct {
	guard guard.ConstructorGuard

	companyID   kernel.UUID
	orderNumber string
}

// NewGetOrderByNumberQuery creates a company-scoped order lookup.
func NewGetOrderByNumberQuery(companyID kernel.UUID, orderNumber string) (GetOrderByNumberQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetOrderByNumberQuery{}, errs.NewValueIsRequiredErrorWithCause("companyID", err)
	}
	if orderNumber == "" {
		return GetOrderByNumberQuery{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return GetOrderByNumberQuery{
		guard:       guard.NewConstructorGuard(),
		companyID:   companyID,
		orderNumber: orderNumber,
	}, nil
}

// CompanyID returns the company the lookup is scoped to.
func (q GetOrderByNumberQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// OrderNumber returns the requested order number.
func (q GetOrderByNumberQuery) OrderNumber() string {
	return q.orderNumber
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByNumberQueryIsNotConstructed if validation fails.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// GetOrderByNumberQueryResponse carries the order's details for display.
type GetOrderByNumberQueryResponse struct {
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
