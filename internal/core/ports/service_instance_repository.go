package ports

import (
	"context"

	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/kernel"
)

// ServiceInstanceRepository defines the persistence contract for service
// instance aggregates.
type ServiceInstanceRepository interface {
	// Add persists a new service instance aggregate to storage.
	Add(ctx context.Context, aggregate *instance.ServiceInstance) error

	// Update persists changes to an existing service instance aggregate.
	// Returns ConcurrentModificationError if the instance changed since it
	// was read.
	Update(ctx context.Context, aggregate *instance.ServiceInstance) error

	// Get retrieves a service instance aggregate by its unique identifier.
	// Returns ObjectNotFoundError if the instance does not exist.
	Get(ctx context.Context, id kernel.UUID) (*instance.ServiceInstance, error)
}
