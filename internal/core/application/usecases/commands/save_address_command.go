package commands

import (
	"errors"

	"hmpaquetes/internal/core/domain/model/location"
	"hmpaquetes/internal/pkg/guard"
)

var ErrSaveAddressCommandIsNotConstructed = errors.New(
	"SaveAddressCommand must be created via NewSaveAddressCommand constructor",
)

// SaveAddressCommand stores an address received from the postal or customs feed.
type SaveAddressCommand struct {
	address *location.Address

	guard guard.ConstructorGuard
}

func NewSaveAddressCommand(street location.Street, provinceCode, municipalityCode string) (SaveAddressCommand, error) {
	address, err := location.NewAddress(street, provinceCode, municipalityCode)
	if err != nil {
		return SaveAddressCommand{}, err
	}

	return SaveAddressCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SaveAddressCommand) Validate() error {
	return c.guard.Validate(ErrSaveAddressCommandIsNotConstructed)
}

func (c SaveAddressCommand) Address() *location.Address {
	return c.address
}
