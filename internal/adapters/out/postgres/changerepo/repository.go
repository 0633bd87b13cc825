package changerepo

import (
	"context"
	"errors"
	"time"

	"netondemand/internal/core/domain/model/bandwidthchange"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBandwidthChangeRepository implements BandwidthChangeRepository using GORM.
// Updates use optimistic locking via the version column; a repository instance
// must live no longer than its unit of work.
type GormBandwidthChangeRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	versions map[uuid.UUID]int64
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBandwidthChangeRepository creates a new GORM bandwidth change repository.
func NewGormBandwidthChangeRepository(db *gorm.DB, tracker aggregateTracker) *GormBandwidthChangeRepository {
	return &GormBandwidthChangeRepository{
		db:       db,
		tracker:  tracker,
		versions: make(map[uuid.UUID]int64),
	}
}

// Add saves a new bandwidth change to the database.
func (r *GormBandwidthChangeRepository) Add(ctx context.Context, aggregate *bandwidthchange.BandwidthChange) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.versions[dto.ID] = dto.Version
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bandwidth change to the database.
// Returns ConcurrentModificationError when the row's version no longer
// matches the one this repository loaded.
func (r *GormBandwidthChangeRepository) Update(ctx context.Context, aggregate *bandwidthchange.BandwidthChange) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loaded, err := r.loadedVersion(ctx, dto.ID)
	if err != nil {
		return err
	}

	dto.Version = loaded + 1
	result := r.db.WithContext(ctx).
		Model(&ChangeDTO{}).
		Where("id = ? AND version = ?", dto.ID, loaded).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("bandwidth change", aggregate.ID().String())
	}

	r.versions[dto.ID] = dto.Version
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bandwidth change by ID.
func (r *GormBandwidthChangeRepository) Get(ctx context.Context, id kernel.UUID) (*bandwidthchange.BandwidthChange, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ChangeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bandwidth change", id.String())
		}
		return nil, err
	}

	r.versions[dto.ID] = dto.Version
	return toDomain(dto)
}

// GetAllScheduledBefore retrieves the scheduled changes whose scheduled time
// is at or before the given instant, oldest first. Used by the due-change sweep.
func (r *GormBandwidthChangeRepository) GetAllScheduledBefore(ctx context.Context, at time.Time) ([]*bandwidthchange.BandwidthChange, error) {
	var dtos []ChangeDTO
	if err := r.db.WithContext(ctx).
		Order("scheduled_at").
		Find(&dtos, "status = ? AND scheduled_at <= ?", int(bandwidthchange.Scheduled), at).Error; err != nil {
		return nil, err
	}

	changes := make([]*bandwidthchange.BandwidthChange, 0, len(dtos))
	for _, dto := range dtos {
		change, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.versions[dto.ID] = dto.Version
		changes = append(changes, change)
	}

	return changes, nil
}

// loadedVersion returns the version this repository loaded the row with,
// falling back to a lookup for aggregates restored elsewhere.
func (r *GormBandwidthChangeRepository) loadedVersion(ctx context.Context, id uuid.UUID) (int64, error) {
	if loaded, ok := r.versions[id]; ok {
		return loaded, nil
	}

	var current int64
	result := r.db.WithContext(ctx).
		Model(&ChangeDTO{}).
		Select("version").
		Where("id = ?", id).
		Scan(&current)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewObjectNotFoundError("bandwidth change", id.String())
	}
	return current, nil
}
