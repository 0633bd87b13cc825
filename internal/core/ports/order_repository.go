package ports

import (
	"context"

	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns ConcurrentModificationError if the order changed since it was read.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its customer-facing order number.
	// Returns ObjectNotFoundError if no order carries the number.
	GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// Used by the order processing job to drive lifecycle transitions.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// NextOrderSequence allocates the next value of the atomic order-number
	// counter. Values are unique and monotonically increasing even under
	// concurrent submissions.
	NextOrderSequence(ctx context.Context) (int64, error)
}
