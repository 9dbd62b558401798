package ports

import (
	"context"

	"hmpaquetes/internal/core/domain/model/location"
)

// LocationRepository reads warehouses and the customs geography.
// Lookups return an errs.ErrObjectNotFound error when nothing matches.
type LocationRepository interface {
	// GetByName retrieves the warehouse with exactly that name.
	GetByName(ctx context.Context, name string) (*location.Location, error)

	ProvinceByCustomsCode(ctx context.Context, code string) (*location.Province, error)

	// MunicipalityByCustomsCode looks up a municipality code within one province.
	MunicipalityByCustomsCode(ctx context.Context, code string, provinceID int64) (*location.Municipality, error)
}

// AddressRepository defines the persistence contract for addresses.
type AddressRepository interface {
	// Add persists a new address with its resolved references and assigns its id.
	Add(ctx context.Context, address *location.Address) error

	Get(ctx context.Context, id int64) (*location.Address, error)
}
