package shipment

import (
	"time"

	"github.com/google/uuid"
)

const StatusChangedEventName = "shipment.status_changed"

// StatusChanged is recorded whenever a shipment moves to a different status.
type StatusChanged struct {
	ID         uuid.UUID `json:"id"`
	ShipmentID int64     `json:"shipment_id"`
	Code       string    `json:"codigo"`
	From       Status    `json:"estado_anterior"`
	To         Status    `json:"estado"`
	At         time.Time `json:"fecha"`
}

func newStatusChanged(s *Shipment, from, to Status, at time.Time) StatusChanged {
	return StatusChanged{
		ID:         uuid.New(),
		ShipmentID: s.id,
		Code:       s.code,
		From:       from,
		To:         to,
		At:         at.UTC(),
	}
}

func (e StatusChanged) EventID() uuid.UUID {
	return e.ID
}

func (e StatusChanged) EventName() string {
	return StatusChangedEventName
}

func (e StatusChanged) AggregateKey() string {
	return e.Code
}

func (e StatusChanged) OccurredAt() time.Time {
	return e.At
}
