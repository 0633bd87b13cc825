package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// ServiceCatalog returns a ServiceCatalog bound to the current transaction.
	ServiceCatalog() ServiceCatalog

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ServiceInstanceRepository returns a ServiceInstanceRepository bound to
	// the current transaction.
	ServiceInstanceRepository() ServiceInstanceRepository

	// BandwidthChangeRepository returns a BandwidthChangeRepository bound to
	// the current transaction.
	BandwidthChangeRepository() BandwidthChangeRepository
}
