package commands_test

import (
	"errors"
	"testing"

	"hmpaquetes/internal/core/application/usecases/commands"
	"hmpaquetes/internal/core/domain/model/document"
	"hmpaquetes/internal/core/domain/model/shipment"
	"hmpaquetes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReturnDispatchItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReturnDispatchItemCommand(3)
	require.NoError(t, err)

	item := testItem(t, 3, 10, document.KindDispatch)
	s := testShipment(t, 10, shipment.InTransit)

	itemRepo := new(MockItemRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		itemRepo.On("Get", ctx, int64(3)).Return(item, nil).Once(),
		shipmentRepo.On("Get", ctx, int64(10)).Return(s, nil).Once(),
		itemRepo.On("Update", ctx, item).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewReturnDispatchItemCommandHandler(itemFactory{factory}).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, item.Returned())
	assert.False(t, item.Confirmed())
	assert.Equal(t, shipment.Received, s.Status())
	itemRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReturnDispatchItemCommandHandler_Handle_NotDispatchItem(t *testing.T) {
	for _, kind := range []document.Kind{document.KindIntake, document.KindTransfer} {
		t.Run(kind.String(), func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewReturnDispatchItemCommand(3)
			require.NoError(t, err)

			item := testItem(t, 3, 10, kind)
			s := testShipment(t, 10, shipment.InTransit)

			itemRepo := new(MockItemRepository)
			shipmentRepo := new(MockShipmentRepository)
			uow := new(MockUoW)
			factory := new(MockUoWFactory)

			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("ItemRepository").Return(itemRepo).Once()
			uow.On("ShipmentRepository").Return(shipmentRepo).Once()
			itemRepo.On("Get", ctx, int64(3)).Return(item, nil).Once()
			shipmentRepo.On("Get", ctx, int64(10)).Return(s, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			err = commands.NewReturnDispatchItemCommandHandler(itemFactory{factory}).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrInvalidOperation)
			assert.False(t, item.Returned())
			assert.Equal(t, shipment.InTransit, s.Status())
			itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestReturnDispatchItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReturnDispatchItemCommand(3)
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("ShipmentRepository").Return(new(MockShipmentRepository)).Once()
	itemRepo.On("Get", ctx, int64(3)).Return(nil, errs.NewObjectNotFoundError("item", int64(3))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewReturnDispatchItemCommandHandler(itemFactory{factory}).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestReturnDispatchItemCommandHandler_Handle_ShipmentUpdateFailsRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReturnDispatchItemCommand(3)
	require.NoError(t, err)

	item := testItem(t, 3, 10, document.KindDispatch)
	s := testShipment(t, 10, shipment.InTransit)

	itemRepo := new(MockItemRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	itemRepo.On("Get", ctx, int64(3)).Return(item, nil).Once()
	shipmentRepo.On("Get", ctx, int64(10)).Return(s, nil).Once()
	itemRepo.On("Update", ctx, item).Return(nil).Once()
	shipmentRepo.On("Update", ctx, s).Return(errors.New("deadlock detected")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewReturnDispatchItemCommandHandler(itemFactory{factory}).Handle(ctx, cmd)

	require.EqualError(t, err, "deadlock detected")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestReturnDispatchItemCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)

	err := commands.NewReturnDispatchItemCommandHandler(itemFactory{factory}).
		Handle(t.Context(), commands.ReturnDispatchItemCommand{})

	require.ErrorIs(t, err, commands.ErrReturnDispatchItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestReturnDispatchItemCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReturnDispatchItemCommand(3)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	err = commands.NewReturnDispatchItemCommandHandler(itemFactory{factory}).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
