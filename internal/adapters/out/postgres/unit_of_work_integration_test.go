package postgres_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "hmpaquetes/internal/adapters/out/postgres"
	"hmpaquetes/internal/adapters/out/postgres/pgtest"
	"hmpaquetes/internal/core/domain/model/document"
	"hmpaquetes/internal/core/domain/model/kernel"
	"hmpaquetes/internal/core/domain/model/shipment"
	"hmpaquetes/internal/core/ports"
	"hmpaquetes/internal/pkg/ddd"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database  *pgtest.Database
	publisher *MockEventPublisher
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.publisher = new(MockEventPublisher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.database.DB, suite.publisher, logger)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.ItemRepository())
	suite.NotNil(uow1.DocumentRepository())
	suite.NotNil(uow1.LocationRepository())
	suite.NotNil(uow1.AddressRepository())
	suite.NotNil(uow1.ServiceRepository())
	suite.NotNil(uow1.QuotationRepository())
	suite.NotNil(uow1.TaskRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPublishesStatusChanges() {
	ctx := context.Background()
	s := suite.addShipment("HM2025")

	itemID := suite.addDispatchItem(s.ID())

	var published []ddd.DomainEvent
	suite.publisher.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(1).([]ddd.DomainEvent) }).
		Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	item, err := uow.ItemRepository().Get(ctx, itemID)
	suite.Require().NoError(err)
	loaded, err := uow.ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(item.MarkReturned(loaded, time.Now()))
	suite.Require().NoError(uow.ItemRepository().Update(ctx, item))
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	suite.publisher.AssertExpectations(suite.T())
	suite.Require().Len(published, 1)
	changed, ok := published[0].(shipment.StatusChanged)
	suite.Require().True(ok)
	suite.Equal(shipment.InTransit, changed.From)
	suite.Equal(shipment.Received, changed.To)
	suite.Equal("HM2025", changed.AggregateKey())
	suite.Empty(loaded.DomainEvents(), "events are cleared after publishing")

	reread, err := suite.factory.Create().ItemRepository().Get(ctx, itemID)
	suite.Require().NoError(err)
	suite.True(reread.Returned())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChangesAndEvents() {
	ctx := context.Background()
	s := suite.addShipment("HM2025")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(shipment.Delivered, time.Now()))
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Rollback(ctx))

	reread, err := suite.factory.Create().ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, reread.Status())
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishFailureDoesNotFailCommit() {
	ctx := context.Background()
	s := suite.addShipment("HM2025")
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(shipment.Delivered, time.Now()))
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, loaded))

	suite.Require().NoError(uow.Commit(ctx))

	reread, err := suite.factory.Create().ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, reread.Status())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	first := suite.newShipment("FIRST")
	second := suite.newShipment("SECOND")
	suite.Require().NoError(uow1.ShipmentRepository().Add(ctx, first))
	suite.Require().NoError(uow2.ShipmentRepository().Add(ctx, second))

	_, err := uow1.ShipmentRepository().GetByCode(ctx, "SECOND")
	suite.Require().Error(err, "UOW1 should not see SECOND")
	_, err = uow2.ShipmentRepository().GetByCode(ctx, "FIRST")
	suite.Require().Error(err, "UOW2 should not see FIRST")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	repo := suite.factory.Create().ShipmentRepository()
	_, err = repo.GetByCode(ctx, "FIRST")
	suite.Require().NoError(err, "FIRST should persist after commit")
	_, err = repo.GetByCode(ctx, "SECOND")
	suite.Require().Error(err, "SECOND should not persist after rollback")
}

// addShipment stores an InTransit shipment outside any transaction.
func (suite *UnitOfWorkIntegrationTestSuite) addShipment(code string) *shipment.Shipment {
	id, err := suite.database.InsertShipment(code, string(shipment.InTransit), 12, nil)
	suite.Require().NoError(err)

	s, err := suite.factory.Create().ShipmentRepository().Get(context.Background(), id)
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) newShipment(code string) *shipment.Shipment {
	s, err := shipment.NewShipment(code, kernel.NewWeight(3), "USA", "")
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) addDispatchItem(shipmentID int64) int64 {
	item, err := document.RestoreItem(0, shipmentID, document.Ref{Kind: document.KindDispatch, ID: 1}, true, false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().ItemRepository().Add(context.Background(), item))
	return item.ID()
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
