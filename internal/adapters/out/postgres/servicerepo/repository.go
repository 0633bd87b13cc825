package servicerepo

import (
	"context"
	"errors"

	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceRepository implements ServiceCatalog using GORM.
// It also carries an Add used by catalog seeding and tests; the portal's
// write path never touches the catalog.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GORM catalog repository.
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// Add saves a new catalog entry to the database.
func (r *GormServiceRepository) Add(ctx context.Context, service *catalog.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	dto := fromDomain(service)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetService retrieves a catalog entry by ID, retired entries included.
// Orderability is the caller's concern.
func (r *GormServiceRepository) GetService(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
