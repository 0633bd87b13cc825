package instancerepo

import (
	"context"
	"errors"

	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormServiceInstanceRepository implements ServiceInstanceRepository using GORM.
// Updates use optimistic locking via the version column; a repository instance
// must live no longer than its unit of work.
type GormServiceInstanceRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	versions map[uuid.UUID]int64
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceInstanceRepository creates a new GORM service instance repository.
func NewGormServiceInstanceRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceInstanceRepository {
	return &GormServiceInstanceRepository{
		db:       db,
		tracker:  tracker,
		versions: make(map[uuid.UUID]int64),
	}
}

// Add saves a new service instance to the database.
func (r *GormServiceInstanceRepository) Add(ctx context.Context, aggregate *instance.ServiceInstance) error {
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

// Update saves an existing service instance to the database.
// Returns ConcurrentModificationError when the row's version no longer
// matches the one this repository loaded.
func (r *GormServiceInstanceRepository) Update(ctx context.Context, aggregate *instance.ServiceInstance) error {
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
		Model(&InstanceDTO{}).
		Where("id = ? AND version = ?", dto.ID, loaded).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("service instance", aggregate.ID().String())
	}

	r.versions[dto.ID] = dto.Version
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a service instance by ID.
func (r *GormServiceInstanceRepository) Get(ctx context.Context, id kernel.UUID) (*instance.ServiceInstance, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InstanceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service instance", id.String())
		}
		return nil, err
	}

	r.versions[dto.ID] = dto.Version
	return toDomain(dto)
}

// loadedVersion returns the version this repository loaded the row with,
// falling back to a lookup for aggregates restored elsewhere.
func (r *GormServiceInstanceRepository) loadedVersion(ctx context.Context, id uuid.UUID) (int64, error) {
	if loaded, ok := r.versions[id]; ok {
		return loaded, nil
	}

	var current int64
	result := r.db.WithContext(ctx).
		Model(&InstanceDTO{}).
		Select("version").
		Where("id = ?", id).
		Scan(&current)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewObjectNotFoundError("service instance", id.String())
	}
	return current, nil
}
