package ports

import (
	"context"

	"hmpaquetes/internal/core/domain/model/quotation"
)

// ServiceRepository reads the service catalogue.
type ServiceRepository interface {
	// Get retrieves a service by id, whether active or not.
	Get(ctx context.Context, id int64) (*quotation.Service, error)
}

// QuotationRepository defines the persistence contract for quotations.
type QuotationRepository interface {
	// Add inserts the quotation row and one association row per service.
	// Callers run it inside a transaction so a failed association leaves no quotation.
	Add(ctx context.Context, aggregate *quotation.Quotation) error
}
