package location

import (
	"errors"
	"strings"

	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress")

// Street is the free-form part of an address.
type Street struct {
	Street        string
	BetweenStreet string
	AndStreet     string
	Number        string
	Floor         string
	Apartment     string
	FullAddress   string
}

// Address is a postal address. The raw province and municipality codes come
// from the customs feed; the resolved references are attached by the address
// resolver and stay nil when no match exists.
type Address struct {
	id               int64
	street           Street
	provinceCode     string
	municipalityCode string

	province     *Province
	municipality *Municipality

	guard guard.ConstructorGuard
}

// NewAddress accepts an address with any combination of fields, but not an
// entirely empty one.
func NewAddress(street Street, provinceCode, municipalityCode string) (*Address, error) {
	a := RestoreAddress(0, street, provinceCode, municipalityCode, nil, nil)
	if a.provinceCode == "" && a.municipalityCode == "" && street == (Street{}) {
		return nil, errs.NewValueIsRequiredError("domicilio")
	}
	return a, nil
}

// RestoreAddress rebuilds a stored address with whatever references it had.
func RestoreAddress(id int64, street Street, provinceCode, municipalityCode string, province *Province, municipality *Municipality) *Address {
	return &Address{
		id:               id,
		street:           street,
		provinceCode:     strings.TrimSpace(provinceCode),
		municipalityCode: strings.TrimSpace(municipalityCode),
		province:         province,
		municipality:     municipality,
		guard:            guard.NewConstructorGuard(),
	}
}

func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) AssignID(id int64) error {
	if a.id != 0 {
		return errors.New("address already has an id")
	}
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id, 1, "max int64")
	}
	a.id = id
	return nil
}

func (a *Address) ID() int64 {
	return a.id
}

func (a *Address) Street() Street {
	return a.street
}

func (a *Address) ProvinceCode() string {
	return a.provinceCode
}

func (a *Address) MunicipalityCode() string {
	return a.municipalityCode
}

func (a *Address) Province() *Province {
	return a.province
}

func (a *Address) Municipality() *Municipality {
	return a.municipality
}

// AttachReferences replaces both resolved references. A municipality is only
// kept when it belongs to the attached province.
func (a *Address) AttachReferences(province *Province, municipality *Municipality) {
	a.province = province
	a.municipality = nil
	if province != nil && municipality != nil && municipality.ProvinceID() == province.ID() {
		a.municipality = municipality
	}
}
