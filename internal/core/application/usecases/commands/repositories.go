// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"netondemand/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest facade that covers its repositories;
// the full ports.UnitOfWork satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CatalogFactory provides access to the catalog lookup within a transaction.
	CatalogFactory interface {
		ServiceCatalog() ports.ServiceCatalog
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InstanceRepoFactory provides access to the service instance repository
	// within a transaction.
	InstanceRepoFactory interface {
		ServiceInstanceRepository() ports.ServiceInstanceRepository
	}

	// ChangeRepoFactory provides access to the bandwidth change repository
	// within a transaction.
	ChangeRepoFactory interface {
		BandwidthChangeRepository() ports.BandwidthChangeRepository
	}

	// OrderUoW manages transactions for order submission and cancellation:
	// the catalog, the order repository, and the instance repository for
	// ownership checks.
	OrderUoW interface {
		TxManager
		CatalogFactory
		OrderRepoFactory
		InstanceRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InstanceUoW manages transactions for instance-only operations.
	InstanceUoW interface {
		TxManager
		CatalogFactory
		InstanceRepoFactory
	}

	// InstanceUoWFactory creates new instance unit of work instances.
	InstanceUoWFactory interface {
		Create() InstanceUoW
	}

	// ChangeUoW manages transactions for bandwidth change operations, which
	// touch the change, its instance, and the instance's catalog service.
	ChangeUoW interface {
		TxManager
		CatalogFactory
		InstanceRepoFactory
		ChangeRepoFactory
	}

	// ChangeUoWFactory creates new bandwidth change unit of work instances.
	ChangeUoWFactory interface {
		Create() ChangeUoW
	}

	// FulfilmentUoW manages transactions for order completion, which may
	// touch every aggregate: the order, the catalog service, the instance,
	// and a recorded bandwidth change.
	FulfilmentUoW interface {
		TxManager
		CatalogFactory
		OrderRepoFactory
		InstanceRepoFactory
		ChangeRepoFactory
	}

	// FulfilmentUoWFactory creates new fulfilment unit of work instances.
	FulfilmentUoWFactory interface {
		Create() FulfilmentUoW
	}
)
