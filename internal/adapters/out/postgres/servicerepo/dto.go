// Package servicerepo provides data transfer objects and mapping functions for
// the service catalog. The catalog is read-mostly: the portal never mutates it,
// only the operator seeds and retires entries.
package servicerepo

import (
	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceDTO represents the database structure for catalog entries.
// Bandwidth bounds and per-Mbps pricing are nullable: products without an
// adjustable bandwidth carry neither.
type ServiceDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                  string
	ServiceType           int
	BaseBandwidthMbps     *int
	MinBandwidthMbps      *int
	MaxBandwidthMbps      *int
	BasePriceMonthly      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PricePerMbps          *decimal.Decimal `gorm:"type:decimal(12,4)"`
	SetupFee              decimal.Decimal  `gorm:"type:decimal(12,2)"`
	ContractTermMonths    int
	IsBandwidthAdjustable bool
	IsAvailable           bool `gorm:"index"`
	ProvisioningTimeHours int
}

// TableName specifies the database table name for catalog entries.
func (ServiceDTO) TableName() string {
	return "services"
}

// fromDomain converts a catalog service to its database representation.
func fromDomain(service *catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:                    service.ID().Bytes(),
		Name:                  service.Name(),
		ServiceType:           int(service.ServiceType()),
		BaseBandwidthMbps:     service.BaseBandwidthMbps(),
		MinBandwidthMbps:      service.MinBandwidthMbps(),
		MaxBandwidthMbps:      service.MaxBandwidthMbps(),
		BasePriceMonthly:      service.BasePriceMonthly(),
		PricePerMbps:          service.PricePerMbps(),
		SetupFee:              service.SetupFee(),
		ContractTermMonths:    service.ContractTermMonths(),
		IsBandwidthAdjustable: service.IsBandwidthAdjustable(),
		IsAvailable:           service.IsOrderable(),
		ProvisioningTimeHours: service.ProvisioningTimeHours(),
	}
}

// toDomain converts a database DTO to a catalog service.
func toDomain(dto ServiceDTO) (*catalog.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewService(id, catalog.ServiceParams{
		Name:                  dto.Name,
		ServiceType:           catalog.ServiceType(dto.ServiceType),
		BaseBandwidthMbps:     dto.BaseBandwidthMbps,
		MinBandwidthMbps:      dto.MinBandwidthMbps,
		MaxBandwidthMbps:      dto.MaxBandwidthMbps,
		BasePriceMonthly:      dto.BasePriceMonthly,
		PricePerMbps:          dto.PricePerMbps,
		SetupFee:              dto.SetupFee,
		ContractTermMonths:    dto.ContractTermMonths,
		IsBandwidthAdjustable: dto.IsBandwidthAdjustable,
		IsAvailable:           dto.IsAvailable,
		ProvisioningTimeHours: dto.ProvisioningTimeHours,
	})
}
