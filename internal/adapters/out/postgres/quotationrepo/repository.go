package quotationrepo

import (
	"context"
	"errors"

	"hmpaquetes/internal/core/domain/model/quotation"
	"hmpaquetes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceRepository implements ServiceRepository using GORM.
type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// Get retrieves a service by id, active or not.
func (r *GormServiceRepository) Get(ctx context.Context, id int64) (*quotation.Service, error) {
	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("servicio", id)
		}
		return nil, err
	}
	return dto.toDomain()
}

// GormQuotationRepository implements QuotationRepository using GORM.
type GormQuotationRepository struct {
	db *gorm.DB
}

func NewGormQuotationRepository(db *gorm.DB) *GormQuotationRepository {
	return &GormQuotationRepository{db: db}
}

// Add inserts the quotation, assigns its id, then inserts one link per service.
// Run it inside a unit of work so a failed link rolls the quotation back.
func (r *GormQuotationRepository) Add(ctx context.Context, aggregate *quotation.Quotation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return err
	}

	rows := links(dto.ID, aggregate.Services())
	if err := db.Create(&rows).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}
