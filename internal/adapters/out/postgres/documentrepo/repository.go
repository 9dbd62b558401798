package documentrepo

import (
	"context"
	"errors"

	"hmpaquetes/internal/core/domain/model/document"
	"hmpaquetes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Add inserts a new item and assigns the generated id to it.
func (r *GormItemRepository) Add(ctx context.Context, item *document.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return item.AssignID(dto.ID)
}

// Update saves the confirmed and returned flags.
func (r *GormItemRepository) Update(ctx context.Context, item *document.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ?", item.ID()).
		Updates(map[string]any{
			"confirmado": item.Confirmed(),
			"devuelto":   item.Returned(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", item.ID())
	}
	return nil
}

func (r *GormItemRepository) Get(ctx context.Context, id int64) (*document.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id)
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// ListByShipment returns the items of a shipment in insertion order.
func (r *GormItemRepository) ListByShipment(ctx context.Context, shipmentID int64) ([]*document.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Where("envio_id = ?", shipmentID).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*document.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// GormDocumentRepository implements DocumentRepository using GORM.
type GormDocumentRepository struct {
	db *gorm.DB
}

func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// Get resolves one document with its warehouses and province.
func (r *GormDocumentRepository) Get(ctx context.Context, ref document.Ref) (document.Document, error) {
	docs, err := r.GetMany(ctx, []document.Ref{ref})
	if err != nil {
		return nil, err
	}

	doc, ok := docs[ref]
	if !ok {
		return nil, errs.NewObjectNotFoundError("documento", ref.String())
	}
	return doc, nil
}

// GetMany runs one query per kind present in refs. Missing documents are
// left out of the result.
func (r *GormDocumentRepository) GetMany(
	ctx context.Context,
	refs []document.Ref,
) (map[document.Ref]document.Document, error) {
	ids := make(map[document.Kind][]int64)
	for _, ref := range refs {
		if err := ref.Kind.Validate(); err != nil {
			return nil, err
		}
		ids[ref.Kind] = append(ids[ref.Kind], ref.ID)
	}

	out := make(map[document.Ref]document.Document, len(refs))
	for kind, kindIDs := range ids {
		var docs []document.Document
		var err error

		switch kind {
		case document.KindIntake:
			docs, err = find[IntakeDTO](ctx, r.db, kindIDs, "Origin")
		case document.KindTransfer:
			docs, err = find[TransferDTO](ctx, r.db, kindIDs, "Origin", "Destination")
		case document.KindDispatch:
			docs, err = find[DispatchDTO](ctx, r.db, kindIDs, "Origin", "Province")
		}
		if err != nil {
			return nil, err
		}

		for _, doc := range docs {
			out[doc.Ref()] = doc
		}
	}

	return out, nil
}

type documentDTO interface {
	IntakeDTO | TransferDTO | DispatchDTO
	toDomain() (document.Document, error)
}

func find[T documentDTO](ctx context.Context, db *gorm.DB, ids []int64, preloads ...string) ([]document.Document, error) {
	query := db.WithContext(ctx)
	for _, p := range preloads {
		query = query.Preload(p)
	}

	var dtos []T
	if err := query.Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	docs := make([]document.Document, 0, len(dtos))
	for _, dto := range dtos {
		doc, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
