// Package instancerepo provides data transfer objects and mapping functions
// for service instance persistence.
package instancerepo

import (
	"time"

	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstanceDTO represents the database structure for persisting service
// instances. Carries a version column for optimistic locking.
type InstanceDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID             uuid.UUID `gorm:"type:uuid;index"`
	ServiceID             uuid.UUID `gorm:"type:uuid"`
	InstanceName          string
	InstallationAddress   string
	Status                int `gorm:"index"`
	CurrentBandwidthMbps  int
	MonthlyCost           decimal.Decimal `gorm:"type:decimal(12,2)"`
	ContractStartDate     *time.Time
	ContractEndDate       *time.Time
	LastBandwidthChangeAt *time.Time
	ProvisionedAt         *time.Time
	Version               int64
}

// TableName specifies the database table name for service instances.
func (InstanceDTO) TableName() string {
	return "service_instances"
}

// fromDomain converts a service instance aggregate to its database representation.
func fromDomain(inst *instance.ServiceInstance) InstanceDTO {
	return InstanceDTO{
		ID:                    inst.ID().Bytes(),
		CompanyID:             inst.CompanyID().Bytes(),
		ServiceID:             inst.ServiceID().Bytes(),
		InstanceName:          inst.InstanceName(),
		InstallationAddress:   inst.InstallationAddress(),
		Status:                int(inst.Status()),
		CurrentBandwidthMbps:  inst.CurrentBandwidthMbps(),
		MonthlyCost:           inst.MonthlyCost(),
		ContractStartDate:     inst.ContractStartDate(),
		ContractEndDate:       inst.ContractEndDate(),
		LastBandwidthChangeAt: inst.LastBandwidthChangeAt(),
		ProvisionedAt:         inst.ProvisionedAt(),
	}
}

// toDomain converts a database DTO to a service instance aggregate.
func toDomain(dto InstanceDTO) (*instance.ServiceInstance, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	return instance.RestoreServiceInstance(
		id, companyID, serviceID,
		dto.InstanceName,
		dto.InstallationAddress,
		dto.CurrentBandwidthMbps,
		dto.MonthlyCost,
		instance.Status(dto.Status),
		dto.ContractStartDate,
		dto.ContractEndDate,
		dto.LastBandwidthChangeAt,
		dto.ProvisionedAt,
	)
}
