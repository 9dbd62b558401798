package commands

import (
	"errors"

	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

var ErrReturnDispatchItemCommandIsNotConstructed = errors.New(
	"ReturnDispatchItemCommand must be created via NewReturnDispatchItemCommand constructor",
)

// ReturnDispatchItemCommand records that a messenger brought a dispatched shipment back.
//
// Example:
//
//	cmd, err := NewReturnDispatchItemCommand(itemID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ReturnDispatchItemCommand struct {
	itemID int64

	guard guard.ConstructorGuard
}

func NewReturnDispatchItemCommand(itemID int64) (ReturnDispatchItemCommand, error) {
	if itemID <= 0 {
		return ReturnDispatchItemCommand{}, errs.NewValueIsOutOfRangeError("itemID", itemID, 1, "max int64")
	}

	return ReturnDispatchItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ReturnDispatchItemCommand) ItemID() int64 {
	return c.itemID
}

// Validate ensures the command was created through the constructor.
func (c ReturnDispatchItemCommand) Validate() error {
	return c.guard.Validate(ErrReturnDispatchItemCommandIsNotConstructed)
}
