package shipment

import (
	"errors"
	"strings"
	"time"

	"hmpaquetes/internal/core/domain/model/kernel"
	"hmpaquetes/internal/pkg/ddd"
	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

const maxCodeLength = 30

var (
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or Restore")
	ErrCodeIsRequired           = errs.NewValueIsRequiredError("no_envio")
	ErrWeightIsRequired         = errs.NewValueIsRequiredError("peso")
	ErrIDAlreadyAssigned        = errors.New("shipment already has an id")
)

// Shipment is the Envio aggregate root.
type Shipment struct { //nolint:recvcheck //setters need pointer receivers
	id                       int64
	code                     string
	weight                   kernel.Weight
	originDestinationCountry string
	description              string
	imposedOn                *time.Time
	receivedOn               *time.Time
	deliveredOn              *time.Time
	tariff                   float64
	dutiesPaid               bool
	homeDelivery             bool
	messengerPayment         float64
	deliveryPhoto            string
	location                 string
	status                   Status
	observation              string

	events []ddd.DomainEvent
	guard  guard.ConstructorGuard
}

// Snapshot is the flat persisted state of a shipment, used by repositories.
type Snapshot struct {
	ID                       int64
	Code                     string
	Weight                   kernel.Weight
	OriginDestinationCountry string
	Description              string
	ImposedOn                *time.Time
	ReceivedOn               *time.Time
	DeliveredOn              *time.Time
	Tariff                   float64
	DutiesPaid               bool
	HomeDelivery             bool
	MessengerPayment         float64
	DeliveryPhoto            string
	Location                 string
	Status                   Status
	Observation              string
}

// NewShipment registers a parcel declared for intake. It starts as NotReceived
// with duties marked as paid.
func NewShipment(code string, weight kernel.Weight, originDestinationCountry, description string) (*Shipment, error) {
	s := &Shipment{
		originDestinationCountry: originDestinationCountry,
		description:              description,
		dutiesPaid:               true,
		status:                   NotReceived,
		guard:                    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCode(code),
		s.setWeight(weight),
	); err != nil {
		return nil, err
	}

	s.RecalculateMessengerPayment()
	return s, nil
}

// Restore rebuilds a shipment from storage. The stored messenger payment is
// kept as is; it is only recomputed when the shipment is mutated.
func Restore(snap Snapshot) (*Shipment, error) {
	s := &Shipment{
		id:                       snap.ID,
		originDestinationCountry: snap.OriginDestinationCountry,
		description:              snap.Description,
		imposedOn:                snap.ImposedOn,
		receivedOn:               snap.ReceivedOn,
		deliveredOn:              snap.DeliveredOn,
		tariff:                   snap.Tariff,
		dutiesPaid:               snap.DutiesPaid,
		homeDelivery:             snap.HomeDelivery,
		messengerPayment:         snap.MessengerPayment,
		deliveryPhoto:            snap.DeliveryPhoto,
		location:                 snap.Location,
		observation:              snap.Observation,
		guard:                    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCode(snap.Code),
		s.setWeight(snap.Weight),
		snap.Status.Validate(),
	); err != nil {
		return nil, err
	}
	s.status = snap.Status

	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// AssignID stores the identity generated by the database on first insert.
func (s *Shipment) AssignID(id int64) error {
	if s.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id, 1, "max int64")
	}
	s.id = id
	return nil
}

func (s *Shipment) ID() int64 {
	return s.id
}

func (s *Shipment) Code() string {
	return s.code
}

func (s *Shipment) Weight() kernel.Weight {
	return s.weight
}

func (s *Shipment) Status() Status {
	return s.status
}

// Location is the free-text name of the warehouse currently holding the parcel.
func (s *Shipment) Location() string {
	return s.location
}

func (s *Shipment) MessengerPayment() float64 {
	return s.messengerPayment
}

func (s *Shipment) DeliveryPhoto() string {
	return s.deliveryPhoto
}

func (s *Shipment) DeliveredOn() *time.Time {
	return s.deliveredOn
}

// Snapshot exports the current state for persistence.
func (s *Shipment) Snapshot() Snapshot {
	return Snapshot{
		ID:                       s.id,
		Code:                     s.code,
		Weight:                   s.weight,
		OriginDestinationCountry: s.originDestinationCountry,
		Description:              s.description,
		ImposedOn:                s.imposedOn,
		ReceivedOn:               s.receivedOn,
		DeliveredOn:              s.deliveredOn,
		Tariff:                   s.tariff,
		DutiesPaid:               s.dutiesPaid,
		HomeDelivery:             s.homeDelivery,
		MessengerPayment:         s.messengerPayment,
		DeliveryPhoto:            s.deliveryPhoto,
		Location:                 s.location,
		Status:                   s.status,
		Observation:              s.observation,
	}
}

// RecalculateMessengerPayment derives the messenger fee from the current weight.
func (s *Shipment) RecalculateMessengerPayment() {
	s.messengerPayment = CalculateMessengerPayment(s.weight)
}

// ChangeWeight corrects the declared weight and recomputes the messenger fee.
func (s *Shipment) ChangeWeight(weight kernel.Weight) error {
	if err := s.setWeight(weight); err != nil {
		return err
	}
	s.RecalculateMessengerPayment()
	return nil
}

// ChangeStatus moves the shipment to status. Setting the current status again is a no-op.
func (s *Shipment) ChangeStatus(status Status, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == s.status {
		return nil
	}

	from := s.status
	s.status = status
	s.events = append(s.events, newStatusChanged(s, from, status, at))
	s.RecalculateMessengerPayment()
	return nil
}

// ReceiveAt records the parcel entering the named warehouse.
func (s *Shipment) ReceiveAt(location string, on time.Time) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("locacion")
	}
	s.location = location
	s.receivedOn = &on
	return s.ChangeStatus(Received, on)
}

// ReturnToWarehouse puts the parcel back in Received after a failed delivery.
func (s *Shipment) ReturnToWarehouse(at time.Time) error {
	return s.ChangeStatus(Received, at)
}

// MarkDelivered closes the shipment with the delivery date and the optional photo path.
func (s *Shipment) MarkDelivered(on time.Time, photo string) error {
	if err := s.ChangeStatus(Delivered, on); err != nil {
		return err
	}
	s.deliveredOn = &on
	if photo != "" {
		s.deliveryPhoto = photo
	}
	return nil
}

// DomainEvents returns events recorded since the last ClearDomainEvents.
func (s *Shipment) DomainEvents() []ddd.DomainEvent {
	out := make([]ddd.DomainEvent, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Shipment) ClearDomainEvents() {
	s.events = nil
}

func (s *Shipment) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrCodeIsRequired
	}
	if len(code) > maxCodeLength {
		return errs.NewValueIsOutOfRangeError("no_envio length", len(code), 1, maxCodeLength)
	}
	s.code = code
	return nil
}

func (s *Shipment) setWeight(weight kernel.Weight) error {
	if !weight.IsKnown() {
		return ErrWeightIsRequired
	}
	s.weight = weight
	return nil
}
