package taskrepo

import (
	"cmp"
	"context"
	"slices"
	"time"

	"hmpaquetes/internal/core/domain/model/task"
	"hmpaquetes/internal/pkg/errs"

	"gorm.io/gorm"
)

// staleClaimAfter is how long a task may stay in procesando before another
// claim takes it over. It must exceed the processing job timeout.
const staleClaimAfter = 10 * time.Minute

// fecha_procesamiento holds the claim time until the outcome is stored.
const claimPendingSQL = `
UPDATE hmpaquetesapp_tareapendiente
SET estado = ?, fecha_procesamiento = NOW()
WHERE id IN (
	SELECT id FROM hmpaquetesapp_tareapendiente
	WHERE estado = ?
		OR (estado = ? AND COALESCE(fecha_procesamiento, fecha_creacion) < NOW() - make_interval(secs => ?))
	ORDER BY fecha_creacion, id
	LIMIT ?
	FOR UPDATE SKIP LOCKED
)
RETURNING id, tipo, datos, fecha_creacion, fecha_procesamiento, estado, resultado, mensaje_error`

// GormTaskRepository implements TaskRepository using GORM.
type GormTaskRepository struct {
	db *gorm.DB
}

func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Add inserts a new task and assigns the generated id to it.
func (r *GormTaskRepository) Add(ctx context.Context, t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return t.AssignID(dto.ID)
}

// Update saves the processing outcome of a task.
func (r *GormTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ?", dto.ID).
		Select("estado", "fecha_procesamiento", "resultado", "mensaje_error").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tarea", dto.ID)
	}
	return nil
}

// ClaimPending moves up to limit pending tasks to procesando, oldest first.
// Tasks left in procesando for longer than staleClaimAfter are claimed again.
// Rows locked by another claim are skipped.
func (r *GormTaskRepository) ClaimPending(ctx context.Context, limit int) ([]*task.Task, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "max int")
	}

	var dtos []TaskDTO
	if err := r.db.WithContext(ctx).
		Raw(claimPendingSQL,
			string(task.Processing),
			string(task.Pending),
			string(task.Processing), staleClaimAfter.Seconds(),
			limit).
		Scan(&dtos).Error; err != nil {
		return nil, err
	}

	slices.SortFunc(dtos, func(a, b TaskDTO) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}
