package ports

import (
	"context"

	"hmpaquetes/internal/pkg/ddd"
)

// EventPublisher delivers domain events to the outside world once the
// transaction that produced them has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...ddd.DomainEvent) error
}
