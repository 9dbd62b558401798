package ports

import (
	"context"

	"hmpaquetes/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment and assigns its database id.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment, including the
	// recalculated messenger payment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by id.
	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// GetByCode retrieves a shipment by tracking code, ignoring case.
	// Returns an errs.ErrObjectNotFound error when no shipment has that code.
	GetByCode(ctx context.Context, code string) (*shipment.Shipment, error)
}
