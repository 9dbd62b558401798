package shipment

import (
	"fmt"

	"hmpaquetes/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment. Values are the wire and storage names.
type Status string

const (
	// NotReceived is the initial state: declared in a manifest, not yet in a warehouse.
	NotReceived Status = "No Recibido"
	// Received means the parcel sits in a warehouse.
	Received Status = "Recibido"
	// InTransit means a messenger carries the parcel to the recipient.
	InTransit Status = "En Trayecto"
	// Delivered is the final state.
	Delivered Status = "Entregado"
	// Sent means the parcel was forwarded to a province.
	Sent Status = "Enviado"
	// Cleared means customs released the parcel without it being received yet.
	Cleared Status = "Desaforado"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		NotReceived: {},
		Received:    {},
		InTransit:   {},
		Delivered:   {},
		Sent:        {},
		Cleared:     {},
	}
}

// ParseStatus converts a stored or submitted value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// AwaitingCarrier reports whether the parcel has not reached the carrier yet.
func (s Status) AwaitingCarrier() bool {
	return s == NotReceived || s == Cleared
}
