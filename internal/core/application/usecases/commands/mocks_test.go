package commands_test

import (
	"context"

	"hmpaquetes/internal/core/application/usecases/commands"
	"hmpaquetes/internal/core/domain/model/document"
	"hmpaquetes/internal/core/domain/model/location"
	"hmpaquetes/internal/core/domain/model/quotation"
	"hmpaquetes/internal/core/domain/model/shipment"
	"hmpaquetes/internal/core/domain/model/task"
	"hmpaquetes/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByCode(ctx context.Context, code string) (*shipment.Shipment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, i *document.Item) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, i *document.Item) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id int64) (*document.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Item), args.Error(1)
}

func (m *MockItemRepository) ListByShipment(ctx context.Context, shipmentID int64) ([]*document.Item, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*document.Item), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) GetByName(ctx context.Context, name string) (*location.Location, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) ProvinceByCustomsCode(ctx context.Context, code string) (*location.Province, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Province), args.Error(1)
}

func (m *MockLocationRepository) MunicipalityByCustomsCode(
	ctx context.Context, code string, provinceID int64,
) (*location.Municipality, error) {
	args := m.Called(ctx, code, provinceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Municipality), args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, a *location.Address) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAddressRepository) Get(ctx context.Context, id int64) (*location.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Address), args.Error(1)
}

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Get(ctx context.Context, id int64) (*quotation.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotation.Service), args.Error(1)
}

type MockQuotationRepository struct{ mock.Mock }

func (m *MockQuotationRepository) Add(ctx context.Context, q *quotation.Quotation) error {
	return m.Called(ctx, q).Error(0)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *task.Task) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTaskRepository) ClaimPending(ctx context.Context, limit int) ([]*task.Task, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	return m.Called().Get(0).(ports.ItemRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	return m.Called().Get(0).(ports.LocationRepository)
}

func (m *MockUoW) AddressRepository() ports.AddressRepository {
	return m.Called().Get(0).(ports.AddressRepository)
}

func (m *MockUoW) ServiceRepository() ports.ServiceRepository {
	return m.Called().Get(0).(ports.ServiceRepository)
}

func (m *MockUoW) QuotationRepository() ports.QuotationRepository {
	return m.Called().Get(0).(ports.QuotationRepository)
}

func (m *MockUoW) TaskRepository() ports.TaskRepository {
	return m.Called().Get(0).(ports.TaskRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) next() *MockUoW {
	return m.MethodCalled("Create").Get(0).(*MockUoW)
}

type itemFactory struct{ *MockUoWFactory }

func (f itemFactory) Create() commands.ItemUoW { return f.next() }

type quotationFactory struct{ *MockUoWFactory }

func (f quotationFactory) Create() commands.QuotationUoW { return f.next() }

type addressFactory struct{ *MockUoWFactory }

func (f addressFactory) Create() commands.AddressUoW { return f.next() }

type taskFactory struct{ *MockUoWFactory }

func (f taskFactory) Create() commands.TaskUoW { return f.next() }
