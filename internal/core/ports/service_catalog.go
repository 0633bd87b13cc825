package ports

import (
	"context"

	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/kernel"
)

// ServiceCatalog defines the read-only lookup contract for catalog services.
// The catalog is reference data: the workflows never mutate it.
type ServiceCatalog interface {
	// GetService retrieves a catalog service by its unique identifier.
	// Returns ObjectNotFoundError if the service does not exist.
	GetService(ctx context.Context, id kernel.UUID) (*catalog.Service, error)
}
