package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hmpaquetes/internal/core/application/usecases/queries"
	"hmpaquetes/internal/core/domain/model/document"
	"hmpaquetes/internal/core/domain/model/kernel"
	"hmpaquetes/internal/core/domain/model/location"
	"hmpaquetes/internal/core/domain/model/shipment"
	"hmpaquetes/internal/core/ports"
	"hmpaquetes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct {
	mock.Mock
	ports.ShipmentRepository
}

func (m *MockShipmentRepository) GetByCode(ctx context.Context, code string) (*shipment.Shipment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
	ports.ItemRepository
}

func (m *MockItemRepository) ListByShipment(ctx context.Context, shipmentID int64) ([]*document.Item, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*document.Item), args.Error(1)
}

type MockDocumentRepository struct {
	mock.Mock
	ports.DocumentRepository
}

func (m *MockDocumentRepository) GetMany(
	ctx context.Context, refs []document.Ref,
) (map[document.Ref]document.Document, error) {
	args := m.Called(ctx, refs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[document.Ref]document.Document), args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
	ports.LocationRepository
}

func (m *MockLocationRepository) GetByName(ctx context.Context, name string) (*location.Location, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

type historyRepos struct {
	shipments *MockShipmentRepository
	items     *MockItemRepository
	documents *MockDocumentRepository
	locations *MockLocationRepository
}

func newHistoryRepos() *historyRepos {
	return &historyRepos{
		shipments: new(MockShipmentRepository),
		items:     new(MockItemRepository),
		documents: new(MockDocumentRepository),
		locations: new(MockLocationRepository),
	}
}

func (r *historyRepos) Create() queries.HistoryRepositories { return r }

func (r *historyRepos) ShipmentRepository() ports.ShipmentRepository { return r.shipments }

func (r *historyRepos) ItemRepository() ports.ItemRepository { return r.items }

func (r *historyRepos) DocumentRepository() ports.DocumentRepository { return r.documents }

func (r *historyRepos) LocationRepository() ports.LocationRepository { return r.locations }

var (
	fixedNow = time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC)
	quiet    = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func newHandler(repos *historyRepos) queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(repos, quiet, queries.HistoryOptions{
		Location: time.UTC,
		MediaURL: "/media/",
		Now:      func() time.Time { return fixedNow },
	})
}

func shipmentWith(t *testing.T, status shipment.Status, warehouse, photo string) *shipment.Shipment {
	t.Helper()
	s, err := shipment.Restore(shipment.Snapshot{
		ID:            5,
		Code:          "ABC123",
		Weight:        kernel.NewWeight(2),
		Status:        status,
		Location:      warehouse,
		DeliveryPhoto: photo,
	})
	require.NoError(t, err)
	return s
}

func mustQuery(t *testing.T, code string) queries.GetShipmentHistoryQuery {
	t.Helper()
	q, err := queries.NewGetShipmentHistoryQuery(code)
	require.NoError(t, err)
	return q
}

func TestGetShipmentHistory_NoItems(t *testing.T) {
	ctx := t.Context()
	repos := newHistoryRepos()
	repos.shipments.On("GetByCode", ctx, "abc123").Return(shipmentWith(t, shipment.NotReceived, "", ""), nil).Once()
	repos.items.On("ListByShipment", ctx, int64(5)).Return([]*document.Item{}, nil).Once()

	resp, err := newHandler(repos).Handle(ctx, mustQuery(t, "abc123"))

	require.NoError(t, err)
	assert.Equal(t, queries.ShipmentSummary{Code: "ABC123", Status: "No Recibido"}, resp.Shipment)
	assert.NotNil(t, resp.History)
	assert.Empty(t, resp.History)
	assert.Equal(t, queries.NoMovementsMessage, resp.Message)
	repos.documents.AssertNotCalled(t, "GetMany", mock.Anything, mock.Anything)
}

func TestGetShipmentHistory_UnknownCode(t *testing.T) {
	ctx := t.Context()
	repos := newHistoryRepos()
	repos.shipments.On("GetByCode", ctx, "NOPE").
		Return(nil, errs.NewObjectNotFoundError("envio", "NOPE")).Once()

	_, err := newHandler(repos).Handle(ctx, mustQuery(t, "NOPE"))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetShipmentHistory_NarratesNewestFirst(t *testing.T) {
	ctx := t.Context()
	central, err := location.NewLocation(1, "Central", 1, false, true)
	require.NoError(t, err)
	holguin, err := location.NewLocation(2, "Holguín", 2, false, false)
	require.NoError(t, err)

	intake, err := document.NewIntake(document.Header{ID: 1, Origin: central,
		CreatedAt: time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	transfer, err := document.NewTransfer(document.Header{ID: 2, Origin: central,
		CreatedAt: time.Date(2025, 2, 1, 10, 5, 0, 0, time.UTC)}, document.Crew{}, holguin)
	require.NoError(t, err)

	items := []*document.Item{
		mustItem(t, 1, intake.Ref(), false, false),
		mustItem(t, 2, transfer.Ref(), false, false),
		mustItem(t, 3, document.Ref{Kind: document.KindDispatch, ID: 404}, false, false),
	}
	refs := []document.Ref{intake.Ref(), transfer.Ref(), {Kind: document.KindDispatch, ID: 404}}

	repos := newHistoryRepos()
	repos.shipments.On("GetByCode", ctx, "ABC123").Return(shipmentWith(t, shipment.Received, "Holguín", ""), nil).Once()
	repos.items.On("ListByShipment", ctx, int64(5)).Return(items, nil).Once()
	repos.locations.On("GetByName", ctx, "Holguín").Return(holguin, nil).Once()
	repos.documents.On("GetMany", ctx, refs).Return(map[document.Ref]document.Document{
		intake.Ref():   intake,
		transfer.Ref(): transfer,
	}, nil).Once()

	resp, err := newHandler(repos).Handle(ctx, mustQuery(t, "ABC123"))

	require.NoError(t, err)
	assert.Equal(t, "Holguín", resp.Shipment.Warehouse)
	assert.Equal(t, 5, resp.Shipment.EstimatedDays)
	assert.Empty(t, resp.Message)
	require.Len(t, resp.History, 2, "dangling dispatch is skipped")
	assert.Equal(t, queries.HistoryEntry{
		Event:  "Transferencia",
		Date:   "01/02/2025 10:05 AM",
		Detail: "El envío ha arribado al almacén <strong>Holguín</strong> transferido desde el almacén <strong>Central</strong>.",
		Kind:   "transferenciaalmacen",
	}, resp.History[0])
	assert.Equal(t, "Entrada", resp.History[1].Event)
	assert.Equal(t, "31/01/2025 11:00 PM", resp.History[1].Date)
}

func TestGetShipmentHistory_CentralWarehouseEstimate(t *testing.T) {
	ctx := t.Context()
	central, err := location.NewLocation(1, "Central", 1, false, true)
	require.NoError(t, err)

	repos := newHistoryRepos()
	repos.shipments.On("GetByCode", ctx, "ABC123").Return(shipmentWith(t, shipment.Received, "Central", ""), nil).Once()
	repos.items.On("ListByShipment", ctx, int64(5)).Return([]*document.Item{}, nil).Once()
	repos.locations.On("GetByName", ctx, "Central").Return(central, nil).Once()

	resp, err := newHandler(repos).Handle(ctx, mustQuery(t, "ABC123"))

	require.NoError(t, err)
	assert.Equal(t, 7, resp.Shipment.EstimatedDays)
}

func TestGetShipmentHistory_UnknownWarehouseIsNotCentral(t *testing.T) {
	ctx := t.Context()
	repos := newHistoryRepos()
	repos.shipments.On("GetByCode", ctx, "ABC123").Return(shipmentWith(t, shipment.Received, "Almacén viejo", ""), nil).Once()
	repos.items.On("ListByShipment", ctx, int64(5)).Return([]*document.Item{}, nil).Once()
	repos.locations.On("GetByName", ctx, "Almacén viejo").
		Return(nil, errs.NewObjectNotFoundError("locacion", "Almacén viejo")).Once()

	resp, err := newHandler(repos).Handle(ctx, mustQuery(t, "ABC123"))

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Shipment.EstimatedDays)
	assert.Equal(t, "Almacén viejo", resp.Shipment.Warehouse)
}

func TestGetShipmentHistory_AllDocumentsMissingFallsBack(t *testing.T) {
	tests := []struct {
		status shipment.Status
		detail string
	}{
		{status: shipment.NotReceived, detail: "El envío aún no ha sido recibido por el transportista."},
		{status: shipment.Cleared, detail: "El envío aún no ha sido recibido por el transportista."},
		{status: shipment.InTransit, detail: "Estado En Trayecto incorrecto."},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			ctx := t.Context()
			ref := document.Ref{Kind: document.KindIntake, ID: 9}

			repos := newHistoryRepos()
			repos.shipments.On("GetByCode", ctx, "ABC123").Return(shipmentWith(t, tt.status, "", ""), nil).Once()
			repos.items.On("ListByShipment", ctx, int64(5)).
				Return([]*document.Item{mustItem(t, 1, ref, false, false)}, nil).Once()
			repos.documents.On("GetMany", ctx, []document.Ref{ref}).
				Return(map[document.Ref]document.Document{}, nil).Once()

			resp, err := newHandler(repos).Handle(ctx, mustQuery(t, "ABC123"))

			require.NoError(t, err)
			require.Len(t, resp.History, 1)
			assert.Equal(t, queries.HistoryEntry{
				Event:  "Aduana",
				Date:   "10/03/2025 06:45 PM",
				Detail: tt.detail,
				Kind:   "sin_tipo",
			}, resp.History[0])
		})
	}
}

func TestGetShipmentHistory_DeliveredPhotoURL(t *testing.T) {
	ctx := t.Context()
	repos := newHistoryRepos()
	repos.shipments.On("GetByCode", ctx, "ABC123").
		Return(shipmentWith(t, shipment.Delivered, "Holguín", "entregas/abc.jpg"), nil).Once()
	repos.items.On("ListByShipment", ctx, int64(5)).Return([]*document.Item{}, nil).Once()

	resp, err := newHandler(repos).Handle(ctx, mustQuery(t, "ABC123"))

	require.NoError(t, err)
	assert.Equal(t, "/media/entregas/abc.jpg", resp.Shipment.PhotoURL)
	assert.Zero(t, resp.Shipment.EstimatedDays)
}

func TestGetShipmentHistory_PhotoHiddenUntilDelivered(t *testing.T) {
	ctx := t.Context()
	repos := newHistoryRepos()
	repos.shipments.On("GetByCode", ctx, "ABC123").
		Return(shipmentWith(t, shipment.Sent, "Holguín", "entregas/abc.jpg"), nil).Once()
	repos.items.On("ListByShipment", ctx, int64(5)).Return([]*document.Item{}, nil).Once()

	resp, err := newHandler(repos).Handle(ctx, mustQuery(t, "ABC123"))

	require.NoError(t, err)
	assert.Empty(t, resp.Shipment.PhotoURL)
	assert.Equal(t, 1, resp.Shipment.EstimatedDays)
}

func TestGetShipmentHistory_InfrastructureErrors(t *testing.T) {
	ctx := t.Context()
	boom := errors.New("connection refused")

	repos := newHistoryRepos()
	repos.shipments.On("GetByCode", ctx, "ABC123").Return(shipmentWith(t, shipment.InTransit, "", ""), nil).Once()
	repos.items.On("ListByShipment", ctx, int64(5)).Return(nil, boom).Once()

	_, err := newHandler(repos).Handle(ctx, mustQuery(t, "ABC123"))

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func mustItem(t *testing.T, id int64, ref document.Ref, confirmed, returned bool) *document.Item {
	t.Helper()
	item, err := document.RestoreItem(id, 5, ref, confirmed, returned)
	require.NoError(t, err)
	return item
}
