// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Carries a version column for optimistic locking: concurrent updates of the
// same order lose with a ConcurrentModificationError instead of overwriting.
type OrderDTO struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID               uuid.UUID  `gorm:"type:uuid;index"`
	UserID                  uuid.UUID  `gorm:"type:uuid"`
	ServiceID               uuid.UUID  `gorm:"type:uuid"`
	ServiceInstanceID       *uuid.UUID `gorm:"type:uuid;index"`
	OrderNumber             string     `gorm:"uniqueIndex"`
	OrderType               int
	Status                  int `gorm:"index"`
	RequestedBandwidthMbps  *int
	TotalCost               decimal.Decimal `gorm:"type:decimal(12,2)"`
	RequestedDate           time.Time
	EstimatedCompletionDate *time.Time
	ActualCompletionDate    *time.Time
	InstallationAddress     string
	PostalCode              string
	ContactName             string
	ContactPhone            string
	ContactEmail            string
	Notes                   string
	WorkflowID              string
	Version                 int64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
// The version column is managed by the repository, not the mapping.
func fromDomain(o *order.Order) OrderDTO {
	var instanceID *uuid.UUID
	if id := o.ServiceInstanceID(); id != nil {
		raw := id.Bytes()
		instanceID = &raw
	}

	return OrderDTO{
		ID:                      o.ID().Bytes(),
		CompanyID:               o.CompanyID().Bytes(),
		UserID:                  o.UserID().Bytes(),
		ServiceID:               o.ServiceID().Bytes(),
		ServiceInstanceID:       instanceID,
		OrderNumber:             o.OrderNumber(),
		OrderType:               int(o.OrderType()),
		Status:                  int(o.Status()),
		RequestedBandwidthMbps:  o.RequestedBandwidthMbps(),
		TotalCost:               o.TotalCost(),
		RequestedDate:           o.RequestedDate(),
		EstimatedCompletionDate: o.EstimatedCompletionDate(),
		ActualCompletionDate:    o.ActualCompletionDate(),
		InstallationAddress:     o.InstallationAddress(),
		PostalCode:              o.PostalCode(),
		ContactName:             o.ContactName(),
		ContactPhone:            o.ContactPhone(),
		ContactEmail:            o.ContactEmail(),
		Notes:                   o.Notes(),
		WorkflowID:              o.WorkflowID(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	var instanceID *kernel.UUID
	if dto.ServiceInstanceID != nil {
		instID, instErr := kernel.UUIDFromBytes((*dto.ServiceInstanceID)[:])
		if instErr != nil {
			return nil, instErr
		}
		instanceID = &instID
	}

	return order.RestoreOrder(
		id, companyID, userID, serviceID,
		dto.OrderNumber,
		order.OrderType(dto.OrderType),
		order.Status(dto.Status),
		order.Params{
			ServiceInstanceID:       instanceID,
			RequestedBandwidthMbps:  dto.RequestedBandwidthMbps,
			TotalCost:               dto.TotalCost,
			RequestedDate:           dto.RequestedDate,
			EstimatedCompletionDate: dto.EstimatedCompletionDate,
			InstallationAddress:     dto.InstallationAddress,
			PostalCode:              dto.PostalCode,
			ContactName:             dto.ContactName,
			ContactPhone:            dto.ContactPhone,
			ContactEmail:            dto.ContactEmail,
			Notes:                   dto.Notes,
			WorkflowID:              dto.WorkflowID,
		},
		dto.ActualCompletionDate,
	)
}
