// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"hmpaquetes/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	QuotationRepoFactory interface {
		QuotationRepository() ports.QuotationRepository
	}

	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// ItemUoW changes document items together with their shipments.
	ItemUoW interface {
		TxManager
		ShipmentRepoFactory
		ItemRepoFactory
	}

	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// QuotationUoW reads services and writes quotations.
	QuotationUoW interface {
		TxManager
		ServiceRepoFactory
		QuotationRepoFactory
	}

	QuotationUoWFactory interface {
		Create() QuotationUoW
	}

	// AddressUoW resolves customs references and writes addresses.
	AddressUoW interface {
		TxManager
		LocationRepoFactory
		AddressRepoFactory
	}

	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// TaskUoW runs pending tasks, which may touch items and shipments.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tasks, err := uow.TaskRepository().ClaimPending(ctx, 10)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TaskUoW interface {
		TxManager
		ShipmentRepoFactory
		ItemRepoFactory
		TaskRepoFactory
	}

	TaskUoWFactory interface {
		Create() TaskUoW
	}
)
