// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work pattern maintains a list of objects affected by a
// business transaction and coordinates writing out changes and resolving
// concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for domain event processing
//   - Optimistic locking shared between a transaction's repositories
//   - Proper isolation between concurrent operations
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Version conflicts surface as ConcurrentModificationError on commit paths
package postgres

import (
	"context"

	"netondemand/internal/adapters/out/postgres/changerepo"
	"netondemand/internal/adapters/out/postgres/instancerepo"
	"netondemand/internal/adapters/out/postgres/orderrepo"
	"netondemand/internal/adapters/out/postgres/servicerepo"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// The factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state, repository set and aggregate
// tracking, ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Repository instances are created once per unit of
// work and shared for its duration: the repositories carry the loaded-version
// bookkeeping that drives optimistic locking, so handing out a fresh instance
// per accessor call would lose it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate

	serviceCatalog *servicerepo.GormServiceRepository
	orderRepo      *orderrepo.GormOrderRepository
	instanceRepo   *instancerepo.GormServiceInstanceRepository
	changeRepo     *changerepo.GormBandwidthChangeRepository
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
// Rolling back without an active transaction returns gorm.ErrInvalidTransaction,
// which deferred cleanup paths ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ServiceCatalog provides access to catalog lookups within the unit of work.
func (uow *GormUnitOfWork) ServiceCatalog() ports.ServiceCatalog {
	if uow.serviceCatalog == nil {
		uow.serviceCatalog = servicerepo.NewGormServiceRepository(uow.conn())
	}
	return uow.serviceCatalog
}

// OrderRepository provides access to order persistence operations within the
// unit of work. The instance is shared for the unit of work's lifetime so its
// optimistic-locking state survives across handler steps.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	if uow.orderRepo == nil {
		uow.orderRepo = orderrepo.NewGormOrderRepository(uow.conn(), uow)
	}
	return uow.orderRepo
}

// ServiceInstanceRepository provides access to service instance persistence
// operations within the unit of work.
func (uow *GormUnitOfWork) ServiceInstanceRepository() ports.ServiceInstanceRepository {
	if uow.instanceRepo == nil {
		uow.instanceRepo = instancerepo.NewGormServiceInstanceRepository(uow.conn(), uow)
	}
	return uow.instanceRepo
}

// BandwidthChangeRepository provides access to bandwidth change persistence
// operations within the unit of work.
func (uow *GormUnitOfWork) BandwidthChangeRepository() ports.BandwidthChangeRepository {
	if uow.changeRepo == nil {
		uow.changeRepo = changerepo.NewGormBandwidthChangeRepository(uow.conn(), uow)
	}
	return uow.changeRepo
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// Called by repository implementations when aggregates are added or updated.
// The tracked aggregates can be retrieved via GetTrackedAggregates after the
// transaction completes, enabling domain event processing or other
// post-transaction activities.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// GetTrackedAggregates returns the aggregates modified within this unit of work.
func (uow *GormUnitOfWork) GetTrackedAggregates() []trackedAggregate {
	return uow.trackedAggregates
}

// conn returns the active transaction, or the base connection when no
// transaction has been begun.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
