// Package changerepo provides data transfer objects and mapping functions
// for bandwidth change persistence.
package changerepo

import (
	"time"

	"netondemand/internal/core/domain/model/bandwidthchange"
	"netondemand/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChangeDTO represents the database structure for persisting bandwidth
// changes. The scheduled_at index serves the due-change sweep.
type ChangeDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceInstanceID     uuid.UUID `gorm:"type:uuid;index"`
	RequestedByUserID     uuid.UUID `gorm:"type:uuid"`
	PreviousBandwidthMbps int
	NewBandwidthMbps      int
	CostImpact            decimal.Decimal `gorm:"type:decimal(12,2)"`
	Reason                string
	Status                int        `gorm:"index"`
	ScheduledAt           *time.Time `gorm:"index"`
	AppliedAt             *time.Time
	Version               int64
}

// TableName specifies the database table name for bandwidth changes.
func (ChangeDTO) TableName() string {
	return "bandwidth_changes"
}

// fromDomain converts a bandwidth change aggregate to its database representation.
func fromDomain(change *bandwidthchange.BandwidthChange) ChangeDTO {
	return ChangeDTO{
		ID:                    change.ID().Bytes(),
		ServiceInstanceID:     change.ServiceInstanceID().Bytes(),
		RequestedByUserID:     change.RequestedByUserID().Bytes(),
		PreviousBandwidthMbps: change.PreviousBandwidthMbps(),
		NewBandwidthMbps:      change.NewBandwidthMbps(),
		CostImpact:            change.CostImpact(),
		Reason:                change.Reason(),
		Status:                int(change.Status()),
		ScheduledAt:           change.ScheduledAt(),
		AppliedAt:             change.AppliedAt(),
	}
}

// toDomain converts a database DTO to a bandwidth change aggregate.
func toDomain(dto ChangeDTO) (*bandwidthchange.BandwidthChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	instanceID, err := kernel.UUIDFromBytes(dto.ServiceInstanceID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.RequestedByUserID[:])
	if err != nil {
		return nil, err
	}

	return bandwidthchange.RestoreBandwidthChange(
		id, instanceID, userID,
		dto.PreviousBandwidthMbps,
		dto.NewBandwidthMbps,
		dto.CostImpact,
		dto.Reason,
		bandwidthchange.Status(dto.Status),
		dto.ScheduledAt,
		dto.AppliedAt,
	)
}
