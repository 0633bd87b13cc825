package ports

import (
	"context"
	"time"

	"netondemand/internal/core/domain/model/bandwidthchange"
	"netondemand/internal/core/domain/model/kernel"
)

// BandwidthChangeRepository defines the persistence contract for bandwidth
// change aggregates.
type BandwidthChangeRepository interface {
	// Add persists a new bandwidth change aggregate to storage.
	Add(ctx context.Context, aggregate *bandwidthchange.BandwidthChange) error

	// Update persists changes to an existing bandwidth change aggregate.
	// Returns ConcurrentModificationError if the change was modified since
	// it was read.
	Update(ctx context.Context, aggregate *bandwidthchange.BandwidthChange) error

	// Get retrieves a bandwidth change aggregate by its unique identifier.
	// Returns ObjectNotFoundError if the change does not exist.
	Get(ctx context.Context, id kernel.UUID) (*bandwidthchange.BandwidthChange, error)

	// GetAllScheduledBefore retrieves all scheduled changes whose scheduled
	// time is at or before the given moment. Used by the application job.
	GetAllScheduledBefore(ctx context.Context, at time.Time) ([]*bandwidthchange.BandwidthChange, error)
}
