package ports

import (
	"context"

	"hmpaquetes/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for pending tasks.
type TaskRepository interface {
	Add(ctx context.Context, t *task.Task) error

	// Update persists status, result and error message of a task.
	Update(ctx context.Context, t *task.Task) error

	// ClaimPending moves up to limit pending tasks, oldest first, to processing
	// and returns them. Tasks claimed by a concurrent caller are skipped. Tasks
	// stuck in processing after a crash are claimed again once they go stale.
	ClaimPending(ctx context.Context, limit int) ([]*task.Task, error)
}
