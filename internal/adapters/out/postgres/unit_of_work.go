// Package postgres provides the GORM-based Unit of Work for the parcel
// domain. A unit of work binds every repository to one transaction and, after
// a successful commit, publishes the domain events of the aggregates its
// repositories saved.
//
// Key Features:
//   - Transaction management across shipment, item, task and quotation repositories
//   - Aggregate tracking for domain event publishing after commit
//   - Repositories fall back to the plain connection when no transaction is active
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ItemRepository().Update(ctx, item); err != nil {
//	    return err
//	}
//	if err := uow.ShipmentRepository().Update(ctx, shipment); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns one transaction and is not safe for concurrent use
//   - Multiple goroutines should use separate UnitOfWork instances
package postgres

import (
	"context"
	"log/slog"

	"hmpaquetes/internal/adapters/out/postgres/documentrepo"
	"hmpaquetes/internal/adapters/out/postgres/locationrepo"
	"hmpaquetes/internal/adapters/out/postgres/quotationrepo"
	"hmpaquetes/internal/adapters/out/postgres/shipmentrepo"
	"hmpaquetes/internal/adapters/out/postgres/taskrepo"
	"hmpaquetes/internal/core/ports"
	"hmpaquetes/internal/pkg/ddd"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate saved during the unit of work.
type trackedAggregate struct {
	Aggregate ddd.EventSource
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one event publisher.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, kafka.NewNoopPublisher(), slog.Default())
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork with its own transaction state and tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates saved through its repositories.
//
// Example usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("failed to begin transaction: %w", err)
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ShipmentRepository().Update(ctx, s); err != nil {
//	    return fmt.Errorf("failed to update shipment: %w", err)
//	}
//
//	// StatusChanged events of s are published once this succeeds
//	return uow.Commit(ctx)
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin again while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes the pending events of
// every tracked aggregate. A publish failure is logged; the data is already
// committed and the error is not returned.
//
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishEvents(ctx)
	return nil
}

// Rollback discards the transaction and forgets tracked aggregates.
//
// Returns gorm.ErrInvalidTransaction when no transaction is active, which
// makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// ShipmentRepository returns a shipment repository bound to the current
// transaction. Saved shipments are tracked for event publishing.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ItemRepository() ports.ItemRepository {
	return documentrepo.NewGormItemRepository(uow.conn())
}

func (uow *GormUnitOfWork) DocumentRepository() ports.DocumentRepository {
	return documentrepo.NewGormDocumentRepository(uow.conn())
}

func (uow *GormUnitOfWork) LocationRepository() ports.LocationRepository {
	return locationrepo.NewGormLocationRepository(uow.conn())
}

func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	return locationrepo.NewGormAddressRepository(uow.conn())
}

func (uow *GormUnitOfWork) ServiceRepository() ports.ServiceRepository {
	return quotationrepo.NewGormServiceRepository(uow.conn())
}

func (uow *GormUnitOfWork) QuotationRepository() ports.QuotationRepository {
	return quotationrepo.NewGormQuotationRepository(uow.conn())
}

func (uow *GormUnitOfWork) TaskRepository() ports.TaskRepository {
	return taskrepo.NewGormTaskRepository(uow.conn())
}

// TrackAggregate registers an aggregate saved within this unit of work.
// Tracking the same aggregate twice is a no-op.
func (uow *GormUnitOfWork) TrackAggregate(aggregate ddd.EventSource) {
	for _, tracked := range uow.trackedAggregates {
		if tracked.Aggregate == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{Aggregate: aggregate})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	var events []ddd.DomainEvent
	for _, t := range tracked {
		events = append(events, t.Aggregate.DomainEvents()...)
		t.Aggregate.ClearDomainEvents()
	}
	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.ErrorContext(ctx, "failed to publish domain events", "events", len(events), "error", err)
		return
	}
	uow.logger.DebugContext(ctx, "domain events published", "events", len(events))
}
