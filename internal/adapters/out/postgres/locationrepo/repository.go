package locationrepo

import (
	"context"
	"errors"

	"hmpaquetes/internal/core/domain/model/location"
	"hmpaquetes/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// GetByName returns the oldest warehouse with exactly that name.
func (r *GormLocationRepository) GetByName(ctx context.Context, name string) (*location.Location, error) {
	var dto LocationDTO
	if err := r.db.WithContext(ctx).Where("nombre = ?", name).Order("id").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locacion", name)
		}
		return nil, err
	}
	return dto.ToDomain()
}

func (r *GormLocationRepository) ProvinceByCustomsCode(ctx context.Context, code string) (*location.Province, error) {
	var dto ProvinceDTO
	if err := r.db.WithContext(ctx).Where("codigo_aduana = ?", code).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("provincia", code)
		}
		return nil, err
	}
	return dto.ToDomain()
}

func (r *GormLocationRepository) MunicipalityByCustomsCode(
	ctx context.Context,
	code string,
	provinceID int64,
) (*location.Municipality, error) {
	var dto MunicipalityDTO
	if err := r.db.WithContext(ctx).
		Where("codigo_aduana = ? AND provincia_id = ?", code, provinceID).
		Order("id").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("municipio", code)
		}
		return nil, err
	}
	return dto.ToDomain()
}

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Add inserts the address with its resolved references and assigns the generated id.
func (r *GormAddressRepository) Add(ctx context.Context, address *location.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	dto := addressFromDomain(address)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	return address.AssignID(dto.ID)
}

// Get retrieves an address with its province and municipality.
func (r *GormAddressRepository) Get(ctx context.Context, id int64) (*location.Address, error) {
	var dto AddressDTO
	if err := r.db.WithContext(ctx).
		Preload("Province").
		Preload("Municipality").
		First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("domicilio", id)
		}
		return nil, err
	}
	return addressToDomain(dto)
}
