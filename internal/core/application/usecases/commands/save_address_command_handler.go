package commands

import (
	"context"

	"hmpaquetes/internal/core/domain/model/location"
	"hmpaquetes/internal/core/domain/services"
)

// SaveAddressCommandHandler resolves the customs references of an address and
// persists it. Unknown codes leave the references empty; lookup failures abort the save.
type SaveAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewSaveAddressCommandHandler(uowFactory AddressUoWFactory) SaveAddressCommandHandler {
	return SaveAddressCommandHandler{uowFactory: uowFactory}
}

// Handle returns the saved address with its id and resolved references.
func (h SaveAddressCommandHandler) Handle(ctx context.Context, command SaveAddressCommand) (*location.Address, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	address := command.Address()
	if err := services.NewAddressResolver(uow.LocationRepository()).Resolve(ctx, address); err != nil {
		return nil, err
	}

	if err := uow.AddressRepository().Add(ctx, address); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return address, nil
}
