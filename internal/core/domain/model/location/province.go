package location

import (
	"errors"
	"strings"

	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

var ErrProvinceIsNotConstructed = errors.New("Province must be created via NewProvince")

// Province is a customs province identified by its customs code.
type Province struct {
	id          int64
	name        string
	customsCode string

	guard guard.ConstructorGuard
}

func NewProvince(id int64, name, customsCode string) (*Province, error) {
	p := &Province{id: id, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setName(name),
		p.setCustomsCode(customsCode),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Province) Validate() error {
	if p == nil {
		return ErrProvinceIsNotConstructed
	}
	return p.guard.Validate(ErrProvinceIsNotConstructed)
}

func (p *Province) ID() int64 {
	return p.id
}

func (p *Province) Name() string {
	return p.name
}

func (p *Province) CustomsCode() string {
	return p.customsCode
}

func (p *Province) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("nombre")
	}
	p.name = name
	return nil
}

func (p *Province) setCustomsCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("codigo_aduana")
	}
	p.customsCode = code
	return nil
}

var ErrMunicipalityIsNotConstructed = errors.New("Municipality must be created via NewMunicipality")

// Municipality belongs to exactly one province. Its customs code is only
// unique within that province.
type Municipality struct {
	id          int64
	name        string
	customsCode string
	provinceID  int64

	guard guard.ConstructorGuard
}

func NewMunicipality(id int64, name, customsCode string, provinceID int64) (*Municipality, error) {
	m := &Municipality{id: id, customsCode: strings.TrimSpace(customsCode), guard: guard.NewConstructorGuard()}

	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("nombre")
	}
	if provinceID <= 0 {
		return nil, errs.NewValueIsRequiredError("provincia")
	}
	m.name = name
	m.provinceID = provinceID

	return m, nil
}

func (m *Municipality) Validate() error {
	if m == nil {
		return ErrMunicipalityIsNotConstructed
	}
	return m.guard.Validate(ErrMunicipalityIsNotConstructed)
}

func (m *Municipality) ID() int64 {
	return m.id
}

func (m *Municipality) Name() string {
	return m.name
}

func (m *Municipality) CustomsCode() string {
	return m.customsCode
}

func (m *Municipality) ProvinceID() int64 {
	return m.provinceID
}
