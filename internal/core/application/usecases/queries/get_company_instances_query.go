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
	ErrGetCompanyInstancesQueryIsNotConstructed = errors.New(
		"GetCompanyInstancesQuery must be created via NewGetCompanyInstancesQuery constructor",
	)
)

// GetCompanyInstancesQuery retrieves every service instance a company holds,
// regardless of lifecycle state. Terminated instances stay visible so the
// portal can show contract history.
type GetCompanyInstancesQuery struct {
	guard guard.ConstructorGuard

	companyID kernel.UUID
}

// NewGetCompanyInstancesQuery creates a query scoped to a single company.
func NewGetCompanyInstancesQuery(companyID kernel.UUID) (GetCompanyInstancesQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetCompanyInstancesQuery{}, errs.NewValueIsRequiredErrorWithCause("companyID", err)
	}

	return GetCompanyInstancesQuery{
		guard:     guard.NewConstructorGuard(),
		companyID: companyID,
	}, nil
}

// CompanyID returns the company whose instances are requested.
func (q GetCompanyInstancesQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCompanyInstancesQueryIsNotConstructed if validation fails.
func (q GetCompanyInstancesQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyInstancesQueryIsNotConstructed)
}

// GetCompanyInstancesQueryResponse represents one provisioned service in the read model.
type GetCompanyInstancesQueryResponse struct {
	ID                   kernel.UUID
	ServiceID            kernel.UUID
	InstanceName         string
	InstallationAddress  string
	Status               string
	CurrentBandwidthMbps int
	MonthlyCost          decimal.Decimal
	ContractStartDate    *time.Time
	ContractEndDate      *time.Time
	ProvisionedAt        *time.Time
}
