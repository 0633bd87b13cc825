package orderrepo

import (
	"context"
	"errors"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"
	"netondemand/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Updates use optimistic locking: the repository remembers the version each
// aggregate was loaded with and refuses to overwrite a row another transaction
// has moved on. For that reason a repository instance must live no longer than
// its unit of work.
type GormOrderRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	versions map[uuid.UUID]int64
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:       db,
		tracker:  tracker,
		versions: make(map[uuid.UUID]int64),
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database.
// Returns ConcurrentModificationError when the row's version no longer
// matches the one this repository loaded.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
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
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loaded).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("order", aggregate.ID().String())
	}

	r.versions[dto.ID] = dto.Version
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	r.versions[dto.ID] = dto.Version
	return toDomain(dto)
}

// GetByNumber retrieves an order by its human-facing order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNumber)
		}
		return nil, err
	}

	r.versions[dto.ID] = dto.Version
	return toDomain(dto)
}

// GetAllInStatus retrieves all orders in the given status, used by the
// order-processing sweep.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Order("order_number").
		Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.versions[dto.ID] = dto.Version
		orders = append(orders, o)
	}

	return orders, nil
}

// NextOrderSequence draws the next value from the order number sequence.
// The sequence never hands out the same value twice, which keeps order
// numbers unique under concurrent submissions.
func (r *GormOrderRepository) NextOrderSequence(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT nextval('order_number_seq')").
		Scan(&seq).Error; err != nil {
		return 0, err
	}
	return seq, nil
}

// loadedVersion returns the version this repository loaded the row with,
// falling back to a lookup for aggregates restored elsewhere.
func (r *GormOrderRepository) loadedVersion(ctx context.Context, id uuid.UUID) (int64, error) {
	if loaded, ok := r.versions[id]; ok {
		return loaded, nil
	}

	var current int64
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("version").
		Where("id = ?", id).
		Scan(&current)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewObjectNotFoundError("order", id.String())
	}
	return current, nil
}
