package commands

import (
	"context"
	"time"
)

// ReturnDispatchItemCommandHandler marks a dispatch item as returned and puts
// its shipment back in Recibido. Both writes share one transaction: either the
// item and the shipment change together or nothing changes.
type ReturnDispatchItemCommandHandler struct {
	uowFactory ItemUoWFactory
	now        func() time.Time
}

func NewReturnDispatchItemCommandHandler(uowFactory ItemUoWFactory) ReturnDispatchItemCommandHandler {
	return ReturnDispatchItemCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns errs.ErrObjectNotFound errors for an unknown item and an
// errs.ErrInvalidOperation error when the item is not a messenger dispatch.
func (h ReturnDispatchItemCommandHandler) Handle(ctx context.Context, command ReturnDispatchItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	shipmentRepo := uow.ShipmentRepository()

	item, err := itemRepo.Get(ctx, command.ItemID())
	if err != nil {
		return err
	}

	s, err := shipmentRepo.Get(ctx, item.ShipmentID())
	if err != nil {
		return err
	}

	if err = item.MarkReturned(s, h.now()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
