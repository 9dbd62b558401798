package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Aggregates saved
// through its repositories are tracked, and their domain events are published
// after a successful commit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction, then publishes the events of
	// tracked aggregates. Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and forgets tracked aggregates.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	ShipmentRepository() ShipmentRepository
	ItemRepository() ItemRepository
	DocumentRepository() DocumentRepository
	LocationRepository() LocationRepository
	AddressRepository() AddressRepository
	ServiceRepository() ServiceRepository
	QuotationRepository() QuotationRepository
	TaskRepository() TaskRepository
}
