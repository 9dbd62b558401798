// Package ddd declares the domain event contract shared by aggregates and the
// infrastructure that delivers events after a transaction commits.
package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded by an aggregate.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	// AggregateKey identifies the aggregate instance; publishers use it as the partition key.
	AggregateKey() string
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
