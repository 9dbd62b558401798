package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListActiveServicesQueryHandler reads active services straight from the database.
//
// Example:
//
//	handler := NewListActiveServicesQueryHandler(db)
//	services, err := handler.Handle(ctx, NewListActiveServicesQuery())
type ListActiveServicesQueryHandler struct {
	db *gorm.DB
}

func NewListActiveServicesQueryHandler(db *gorm.DB) ListActiveServicesQueryHandler {
	return ListActiveServicesQueryHandler{db: db}
}

// Handle returns active services ordered by id.
func (h ListActiveServicesQueryHandler) Handle(
	ctx context.Context,
	query ListActiveServicesQuery,
) ([]ListActiveServicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	services := make([]ListActiveServicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			nombre,
			descripcion
		FROM cotizacion_app_servicio
		WHERE activo = TRUE
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			service     ListActiveServicesQueryResponse
			description sql.NullString
		)
		if err = rows.Scan(&service.ID, &service.Name, &description); err != nil {
			return nil, err
		}
		service.Description = description.String
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}
