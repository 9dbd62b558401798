package ports

import (
	"context"

	"hmpaquetes/internal/core/domain/model/document"
)

// ItemRepository defines the persistence contract for document items.
type ItemRepository interface {
	// Add persists a new item and assigns its database id.
	Add(ctx context.Context, item *document.Item) error

	// Update persists the confirmed and returned flags of an item.
	Update(ctx context.Context, item *document.Item) error

	// Get retrieves an item by id.
	Get(ctx context.Context, id int64) (*document.Item, error)

	// ListByShipment returns the items of a shipment in insertion order.
	ListByShipment(ctx context.Context, shipmentID int64) ([]*document.Item, error)
}

// DocumentRepository resolves documents of every kind.
type DocumentRepository interface {
	// Get retrieves one document by reference.
	Get(ctx context.Context, ref document.Ref) (document.Document, error)

	// GetMany resolves many references with one query per kind. References
	// that do not exist are absent from the result, not an error.
	GetMany(ctx context.Context, refs []document.Ref) (map[document.Ref]document.Document, error)
}
