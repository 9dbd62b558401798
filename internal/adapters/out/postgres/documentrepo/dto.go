// Package documentrepo persists document items and resolves the intake,
// transfer and dispatch documents they point to.
package documentrepo

import (
	"time"

	"hmpaquetes/internal/adapters/out/postgres/locationrepo"
	"hmpaquetes/internal/core/domain/model/document"
)

// ItemDTO is one row of hmpaquetesapp_itemdocumento. DocumentType holds the
// document kind name.
type ItemDTO struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	DocumentType string `gorm:"column:documento_type"`
	DocumentID   int64  `gorm:"column:documento_id"`
	ShipmentID   int64  `gorm:"column:envio_id"`
	Confirmed    bool   `gorm:"column:confirmado"`
	Returned     bool   `gorm:"column:devuelto"`
}

func (ItemDTO) TableName() string {
	return "hmpaquetesapp_itemdocumento"
}

func itemFromDomain(item *document.Item) ItemDTO {
	return ItemDTO{
		ID:           item.ID(),
		DocumentType: item.Document().Kind.String(),
		DocumentID:   item.Document().ID,
		ShipmentID:   item.ShipmentID(),
		Confirmed:    item.Confirmed(),
		Returned:     item.Returned(),
	}
}

func itemToDomain(dto ItemDTO) (*document.Item, error) {
	kind, err := document.ParseKind(dto.DocumentType)
	if err != nil {
		return nil, err
	}
	return document.RestoreItem(dto.ID, dto.ShipmentID, document.Ref{Kind: kind, ID: dto.DocumentID}, dto.Confirmed, dto.Returned)
}

// IntakeDTO is one row of hmpaquetesapp_entradarecibida.
type IntakeDTO struct {
	ID        int64                     `gorm:"column:id;primaryKey"`
	OriginID  int64                     `gorm:"column:locacion_origen_id"`
	Origin    *locationrepo.LocationDTO `gorm:"foreignKey:OriginID"`
	OpenedAt  time.Time                 `gorm:"column:fecha_creacion"`
	CreatedBy string                    `gorm:"column:usuario"`
}

func (IntakeDTO) TableName() string {
	return "hmpaquetesapp_entradarecibida"
}

func (dto IntakeDTO) toDomain() (document.Document, error) {
	h, err := header(dto.ID, dto.Origin, dto.OpenedAt, dto.CreatedBy)
	if err != nil {
		return nil, err
	}
	return document.NewIntake(h)
}

// TransferDTO is one row of hmpaquetesapp_transferenciaalmacen.
type TransferDTO struct {
	ID            int64                     `gorm:"column:id;primaryKey"`
	OriginID      int64                     `gorm:"column:locacion_origen_id"`
	Origin        *locationrepo.LocationDTO `gorm:"foreignKey:OriginID"`
	DestinationID int64                     `gorm:"column:locacion_destino_id"`
	Destination   *locationrepo.LocationDTO `gorm:"foreignKey:DestinationID"`
	OpenedAt      time.Time                 `gorm:"column:fecha_creacion"`
	CreatedBy     string                    `gorm:"column:usuario"`
	MessengerID   *int64                    `gorm:"column:mensajero_id"`
	DriverID      *int64                    `gorm:"column:chofer_id"`
	Confirmed     bool                      `gorm:"column:confirmado"`
}

func (TransferDTO) TableName() string {
	return "hmpaquetesapp_transferenciaalmacen"
}

func (dto TransferDTO) toDomain() (document.Document, error) {
	h, err := header(dto.ID, dto.Origin, dto.OpenedAt, dto.CreatedBy)
	if err != nil {
		return nil, err
	}
	destination, err := dto.Destination.ToDomain()
	if err != nil {
		return nil, err
	}
	return document.NewTransfer(h, document.Crew{
		MessengerID: dto.MessengerID,
		DriverID:    dto.DriverID,
		Confirmed:   dto.Confirmed,
	}, destination)
}

// DispatchDTO is one row of hmpaquetesapp_despachomensajero.
type DispatchDTO struct {
	ID          int64                     `gorm:"column:id;primaryKey"`
	OriginID    int64                     `gorm:"column:locacion_origen_id"`
	Origin      *locationrepo.LocationDTO `gorm:"foreignKey:OriginID"`
	ProvinceID  int64                     `gorm:"column:provincia_id"`
	Province    *locationrepo.ProvinceDTO `gorm:"foreignKey:ProvinceID"`
	OpenedAt    time.Time                 `gorm:"column:fecha_creacion"`
	CreatedBy   string                    `gorm:"column:usuario"`
	MessengerID *int64                    `gorm:"column:mensajero_id"`
	DriverID    *int64                    `gorm:"column:chofer_id"`
	Confirmed   bool                      `gorm:"column:confirmado"`
}

func (DispatchDTO) TableName() string {
	return "hmpaquetesapp_despachomensajero"
}

func (dto DispatchDTO) toDomain() (document.Document, error) {
	h, err := header(dto.ID, dto.Origin, dto.OpenedAt, dto.CreatedBy)
	if err != nil {
		return nil, err
	}
	province, err := dto.Province.ToDomain()
	if err != nil {
		return nil, err
	}
	return document.NewDispatch(h, document.Crew{
		MessengerID: dto.MessengerID,
		DriverID:    dto.DriverID,
		Confirmed:   dto.Confirmed,
	}, province)
}

func header(id int64, origin *locationrepo.LocationDTO, openedAt time.Time, createdBy string) (document.Header, error) {
	loc, err := origin.ToDomain()
	if err != nil {
		return document.Header{}, err
	}
	return document.Header{
		ID:        id,
		Origin:    loc,
		CreatedAt: openedAt,
		CreatedBy: createdBy,
	}, nil
}
