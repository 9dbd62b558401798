// Package quotationrepo persists quotations, their requested services and the
// service catalogue.
package quotationrepo

import (
	"database/sql"
	"time"

	"hmpaquetes/internal/core/domain/model/quotation"
)

// ServiceDTO is one row of cotizacion_app_servicio.
type ServiceDTO struct {
	ID          int64          `gorm:"column:id;primaryKey"`
	Name        string         `gorm:"column:nombre"`
	Description sql.NullString `gorm:"column:descripcion"`
	Active      bool           `gorm:"column:activo"`
}

func (ServiceDTO) TableName() string {
	return "cotizacion_app_servicio"
}

func (dto ServiceDTO) toDomain() (*quotation.Service, error) {
	return quotation.RestoreService(dto.ID, dto.Name, dto.Description.String, dto.Active)
}

// QuotationDTO is one row of cotizacion_app_cotizacion.
type QuotationDTO struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RequestedAt time.Time `gorm:"column:fecha_solicitud"`
	ClientName  string    `gorm:"column:nombre_cliente"`
	Email       string    `gorm:"column:email"`
	Details     string    `gorm:"column:detalles_adicionales"`
	Attended    bool      `gorm:"column:atendido"`
}

func (QuotationDTO) TableName() string {
	return "cotizacion_app_cotizacion"
}

// QuotationServiceDTO links a quotation to one requested service.
type QuotationServiceDTO struct {
	ID          int64 `gorm:"column:id;primaryKey;autoIncrement"`
	QuotationID int64 `gorm:"column:cotizacion_id"`
	ServiceID   int64 `gorm:"column:servicio_id"`
}

func (QuotationServiceDTO) TableName() string {
	return "cotizacion_app_cotizacion_servicios"
}

func fromDomain(q *quotation.Quotation) QuotationDTO {
	return QuotationDTO{
		ID:          q.ID(),
		RequestedAt: q.RequestedAt(),
		ClientName:  q.ClientName(),
		Email:       q.Email(),
		Details:     q.Details(),
		Attended:    q.Attended(),
	}
}

func links(quotationID int64, services []*quotation.Service) []QuotationServiceDTO {
	out := make([]QuotationServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, QuotationServiceDTO{QuotationID: quotationID, ServiceID: s.ID()})
	}
	return out
}
