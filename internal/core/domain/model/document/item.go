package document

import (
	"errors"
	"time"

	"hmpaquetes/internal/core/domain/model/shipment"
	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
	ErrNotDispatchItem      = errs.NewInvalidOperationError("mark returned", "only dispatch items can be returned")
	ErrNotDispatchDelivery  = errs.NewInvalidOperationError("confirm delivery", "only dispatch items can be confirmed")
	ErrItemAlreadyReturned  = errs.NewInvalidOperationError("confirm delivery", "returned items cannot be confirmed")
	ErrShipmentMismatch     = errs.NewInvalidOperationError("update shipment", "shipment does not belong to the item")
)

// Item links one shipment to one document.
type Item struct { //nolint:recvcheck //setters need pointer receivers
	id         int64
	shipmentID int64
	document   Ref
	confirmed  bool
	returned   bool

	guard guard.ConstructorGuard
}

func NewItem(shipmentID int64, doc Ref) (*Item, error) {
	return RestoreItem(0, shipmentID, doc, false, false)
}

// RestoreItem rebuilds a stored item. Only dispatch items may be returned.
func RestoreItem(id, shipmentID int64, doc Ref, confirmed, returned bool) (*Item, error) {
	if shipmentID <= 0 {
		return nil, errs.NewValueIsRequiredError("envio")
	}
	if _, err := NewRef(doc.Kind, doc.ID); err != nil {
		return nil, err
	}
	if returned && doc.Kind != KindDispatch {
		return nil, errs.NewValueIsInvalidErrorWithCause("devuelto", ErrNotDispatchItem)
	}

	return &Item{
		id:         id,
		shipmentID: shipmentID,
		document:   doc,
		confirmed:  confirmed,
		returned:   returned,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) AssignID(id int64) error {
	if i.id != 0 {
		return errors.New("item already has an id")
	}
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id, 1, "max int64")
	}
	i.id = id
	return nil
}

func (i *Item) ID() int64 {
	return i.id
}

func (i *Item) ShipmentID() int64 {
	return i.shipmentID
}

func (i *Item) Document() Ref {
	return i.document
}

func (i *Item) Confirmed() bool {
	return i.confirmed
}

func (i *Item) Returned() bool {
	return i.returned
}

// IsMessengerDispatch reports whether the item belongs to a Dispatch.
func (i *Item) IsMessengerDispatch() bool {
	return i.document.Kind == KindDispatch
}

// MarkReturned flags a dispatched shipment as brought back by the messenger.
// The item loses its confirmation and the shipment goes back to Recibido.
// On error neither the item nor the shipment is changed.
func (i *Item) MarkReturned(s *shipment.Shipment, at time.Time) error {
	if !i.IsMessengerDispatch() {
		return ErrNotDispatchItem
	}
	if err := i.checkShipment(s); err != nil {
		return err
	}

	if err := s.ReturnToWarehouse(at); err != nil {
		return err
	}
	i.returned = true
	i.confirmed = false
	return nil
}

// ConfirmDelivery records a successful messenger delivery on both the item and
// its shipment.
func (i *Item) ConfirmDelivery(s *shipment.Shipment, on time.Time, photo string) error {
	if !i.IsMessengerDispatch() {
		return ErrNotDispatchDelivery
	}
	if i.returned {
		return ErrItemAlreadyReturned
	}
	if err := i.checkShipment(s); err != nil {
		return err
	}

	if err := s.MarkDelivered(on, photo); err != nil {
		return err
	}
	i.confirmed = true
	return nil
}

func (i *Item) checkShipment(s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.ID() != i.shipmentID {
		return ErrShipmentMismatch
	}
	return nil
}
