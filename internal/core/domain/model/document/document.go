package document

import (
	"time"

	"hmpaquetes/internal/core/domain/model/location"
	"hmpaquetes/internal/pkg/errs"
)

// Document is implemented by Intake, Transfer and Dispatch only.
type Document interface {
	Ref() Ref
	Origin() *location.Location
	CreatedAt() time.Time
	CreatedBy() string

	sealed()
}

// Header is the data shared by every document. Origin may be nil when the
// warehouse row no longer exists.
type Header struct {
	ID        int64
	Origin    *location.Location
	CreatedAt time.Time
	CreatedBy string
}

// Crew is who carries the documented goods.
type Crew struct {
	MessengerID *int64
	DriverID    *int64
	Confirmed   bool
}

type base struct {
	ref    Ref
	header Header
}

func newBase(kind Kind, h Header) (base, error) {
	ref, err := NewRef(kind, h.ID)
	if err != nil {
		return base{}, err
	}
	if h.CreatedAt.IsZero() {
		return base{}, errs.NewValueIsRequiredError("fecha_creacion")
	}
	return base{ref: ref, header: h}, nil
}

func (b base) Ref() Ref {
	return b.ref
}

func (b base) Origin() *location.Location {
	return b.header.Origin
}

func (b base) CreatedAt() time.Time {
	return b.header.CreatedAt
}

func (b base) CreatedBy() string {
	return b.header.CreatedBy
}

func (base) sealed() {}

// Intake records a shipment entering a warehouse.
type Intake struct {
	base
}

func NewIntake(h Header) (*Intake, error) {
	b, err := newBase(KindIntake, h)
	if err != nil {
		return nil, err
	}
	return &Intake{base: b}, nil
}

// Transfer moves shipments from the origin warehouse to a destination warehouse.
type Transfer struct {
	base
	crew        Crew
	destination *location.Location
}

func NewTransfer(h Header, crew Crew, destination *location.Location) (*Transfer, error) {
	b, err := newBase(KindTransfer, h)
	if err != nil {
		return nil, err
	}
	return &Transfer{base: b, crew: crew, destination: destination}, nil
}

func (t *Transfer) Crew() Crew {
	return t.crew
}

// Destination may be nil when the warehouse row no longer exists.
func (t *Transfer) Destination() *location.Location {
	return t.destination
}

// Dispatch hands shipments to a messenger for delivery in a province.
type Dispatch struct {
	base
	crew     Crew
	province *location.Province
}

func NewDispatch(h Header, crew Crew, province *location.Province) (*Dispatch, error) {
	b, err := newBase(KindDispatch, h)
	if err != nil {
		return nil, err
	}
	return &Dispatch{base: b, crew: crew, province: province}, nil
}

func (d *Dispatch) Crew() Crew {
	return d.crew
}

func (d *Dispatch) Province() *location.Province {
	return d.province
}
