// Package locationrepo maps warehouses, the customs geography and postal
// addresses to their tables.
package locationrepo

import (
	"hmpaquetes/internal/core/domain/model/location"
)

// ProvinceDTO is one row of hmpaquetesapp_provincia.
type ProvinceDTO struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:nombre"`
	Description string `gorm:"column:descripcion"`
	CustomsCode string `gorm:"column:codigo_aduana"`
}

func (ProvinceDTO) TableName() string {
	return "hmpaquetesapp_provincia"
}

// ToDomain converts the row to a province. A nil row stays nil.
func (dto *ProvinceDTO) ToDomain() (*location.Province, error) {
	if dto == nil {
		return nil, nil
	}
	return location.NewProvince(dto.ID, dto.Name, dto.CustomsCode)
}

// MunicipalityDTO is one row of hmpaquetesapp_municipio.
type MunicipalityDTO struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:nombre"`
	CustomsCode *string `gorm:"column:codigo_aduana"`
	DPA         *string `gorm:"column:dpa"`
	ProvinceID  int64   `gorm:"column:provincia_id"`
}

func (MunicipalityDTO) TableName() string {
	return "hmpaquetesapp_municipio"
}

// ToDomain converts the row to a municipality. A nil row stays nil.
func (dto *MunicipalityDTO) ToDomain() (*location.Municipality, error) {
	if dto == nil {
		return nil, nil
	}
	return location.NewMunicipality(dto.ID, dto.Name, value(dto.CustomsCode), dto.ProvinceID)
}

// LocationDTO is one row of hmpaquetesapp_locacion.
type LocationDTO struct {
	ID                 int64  `gorm:"column:id;primaryKey"`
	Name               string `gorm:"column:nombre"`
	ProvinceID         int64  `gorm:"column:provincia_id"`
	AllowsClearance    bool   `gorm:"column:permite_aforo"`
	IsCentralWarehouse bool   `gorm:"column:es_almacen_central"`
}

func (LocationDTO) TableName() string {
	return "hmpaquetesapp_locacion"
}

// ToDomain converts the row to a warehouse. A nil row stays nil.
func (dto *LocationDTO) ToDomain() (*location.Location, error) {
	if dto == nil {
		return nil, nil
	}
	return location.NewLocation(dto.ID, dto.Name, dto.ProvinceID, dto.AllowsClearance, dto.IsCentralWarehouse)
}

// AddressDTO is one row of hmpaquetesapp_domicilio. The province reference is
// keyed by customs code, the municipality reference by id.
type AddressDTO struct {
	ID                  int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Street              *string          `gorm:"column:calle"`
	BetweenStreet       *string          `gorm:"column:entre_calle"`
	AndStreet           *string          `gorm:"column:y_calle"`
	Number              *string          `gorm:"column:no"`
	Floor               *string          `gorm:"column:piso"`
	Apartment           *string          `gorm:"column:apto"`
	ProvinceCode        string           `gorm:"column:codigo_provincia"`
	MunicipalityCode    string           `gorm:"column:codigo_municipio"`
	FullAddress         *string          `gorm:"column:direccion_completa"`
	ProvinceCustomsCode *string          `gorm:"column:provincia_codigo_aduana"`
	MunicipalityID      *int64           `gorm:"column:municipio_codigo_aduana"`
	Province            *ProvinceDTO     `gorm:"foreignKey:ProvinceCustomsCode;references:CustomsCode"`
	Municipality        *MunicipalityDTO `gorm:"foreignKey:MunicipalityID"`
}

func (AddressDTO) TableName() string {
	return "hmpaquetesapp_domicilio"
}

func addressFromDomain(a *location.Address) AddressDTO {
	street := a.Street()
	dto := AddressDTO{
		ID:               a.ID(),
		Street:           nullable(street.Street),
		BetweenStreet:    nullable(street.BetweenStreet),
		AndStreet:        nullable(street.AndStreet),
		Number:           nullable(street.Number),
		Floor:            nullable(street.Floor),
		Apartment:        nullable(street.Apartment),
		ProvinceCode:     a.ProvinceCode(),
		MunicipalityCode: a.MunicipalityCode(),
		FullAddress:      nullable(street.FullAddress),
	}

	if p := a.Province(); p != nil {
		code := p.CustomsCode()
		dto.ProvinceCustomsCode = &code
	}
	if m := a.Municipality(); m != nil {
		id := m.ID()
		dto.MunicipalityID = &id
	}

	return dto
}

func addressToDomain(dto AddressDTO) (*location.Address, error) {
	province, err := dto.Province.ToDomain()
	if err != nil {
		return nil, err
	}
	municipality, err := dto.Municipality.ToDomain()
	if err != nil {
		return nil, err
	}

	street := location.Street{
		Street:        value(dto.Street),
		BetweenStreet: value(dto.BetweenStreet),
		AndStreet:     value(dto.AndStreet),
		Number:        value(dto.Number),
		Floor:         value(dto.Floor),
		Apartment:     value(dto.Apartment),
		FullAddress:   value(dto.FullAddress),
	}

	return location.RestoreAddress(dto.ID, street, dto.ProvinceCode, dto.MunicipalityCode, province, municipality), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
