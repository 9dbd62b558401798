package services

import (
	"context"
	"errors"

	"hmpaquetes/internal/core/domain/model/location"
	"hmpaquetes/internal/pkg/errs"
)

// CustomsLookup finds provinces and municipalities by their customs codes.
// Both methods return an errs.ErrObjectNotFound error when nothing matches.
type CustomsLookup interface {
	ProvinceByCustomsCode(ctx context.Context, code string) (*location.Province, error)
	MunicipalityByCustomsCode(ctx context.Context, code string, provinceID int64) (*location.Municipality, error)
}

// AddressResolver links addresses to the customs geography they name.
//
// Business rules:
//   - The province is looked up only when the address has a province code
//   - The municipality is looked up only when it has a municipality code AND a province was found
//   - The municipality must belong to the resolved province
//   - A missing match leaves the reference empty and is never an error
//
// Example usage:
//
//	resolver := services.NewAddressResolver(locationRepository)
//	if err := resolver.Resolve(ctx, address); err != nil {
//	    return err // lookup infrastructure failed
//	}
type AddressResolver struct {
	lookup CustomsLookup
}

func NewAddressResolver(lookup CustomsLookup) *AddressResolver {
	return &AddressResolver{lookup: lookup}
}

// Resolve replaces the address references with freshly looked up ones.
//
// Returns:
//   - error: validation errors for an unconstructed address, or lookup errors
//     other than not-found
func (r *AddressResolver) Resolve(ctx context.Context, address *location.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	var (
		province     *location.Province
		municipality *location.Municipality
		err          error
	)

	if code := address.ProvinceCode(); code != "" {
		province, err = r.lookup.ProvinceByCustomsCode(ctx, code)
		if err = ignoreNotFound(err); err != nil {
			return err
		}
	}

	if code := address.MunicipalityCode(); code != "" && province != nil {
		municipality, err = r.lookup.MunicipalityByCustomsCode(ctx, code, province.ID())
		if err = ignoreNotFound(err); err != nil {
			return err
		}
	}

	address.AttachReferences(province, municipality)
	return nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}
