// Package taskrepo persists pending tasks in hmpaquetesapp_tareapendiente.
package taskrepo

import (
	"database/sql"
	"time"

	"hmpaquetes/internal/core/domain/model/task"
)

// TaskDTO is one row of hmpaquetesapp_tareapendiente. Datos and resultado are jsonb.
type TaskDTO struct {
	ID           int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Type         string         `gorm:"column:tipo"`
	Payload      []byte         `gorm:"column:datos;type:jsonb"`
	CreatedAt    time.Time      `gorm:"column:fecha_creacion"`
	ProcessedAt  *time.Time     `gorm:"column:fecha_procesamiento"`
	Status       string         `gorm:"column:estado"`
	Result       []byte         `gorm:"column:resultado;type:jsonb"`
	ErrorMessage sql.NullString `gorm:"column:mensaje_error"`
}

func (TaskDTO) TableName() string {
	return "hmpaquetesapp_tareapendiente"
}

func fromDomain(t *task.Task) TaskDTO {
	snap := t.Snapshot()
	return TaskDTO{
		ID:          snap.ID,
		Type:        string(snap.Type),
		Payload:     []byte(snap.Payload),
		CreatedAt:   snap.CreatedAt,
		ProcessedAt: snap.ProcessedAt,
		Status:      string(snap.Status),
		Result:      []byte(snap.Result),
		ErrorMessage: sql.NullString{
			String: snap.ErrorMessage,
			Valid:  snap.ErrorMessage != "",
		},
	}
}

func toDomain(dto TaskDTO) (*task.Task, error) {
	return task.Restore(task.Snapshot{
		ID:           dto.ID,
		Type:         task.Type(dto.Type),
		Payload:      dto.Payload,
		Status:       task.Status(dto.Status),
		CreatedAt:    dto.CreatedAt,
		ProcessedAt:  dto.ProcessedAt,
		Result:       dto.Result,
		ErrorMessage: dto.ErrorMessage.String,
	})
}
