package commands

import (
	"errors"

	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

const MaxPendingTasksBatch = 500

var ErrProcessPendingTasksCommandIsNotConstructed = errors.New(
	"ProcessPendingTasksCommand must be created via NewProcessPendingTasksCommand constructor",
)

// ProcessPendingTasksCommand runs up to limit queued tasks.
type ProcessPendingTasksCommand struct {
	limit int

	guard guard.ConstructorGuard
}

func NewProcessPendingTasksCommand(limit int) (ProcessPendingTasksCommand, error) {
	if limit < 1 || limit > MaxPendingTasksBatch {
		return ProcessPendingTasksCommand{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPendingTasksBatch)
	}

	return ProcessPendingTasksCommand{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ProcessPendingTasksCommand) Limit() int {
	return c.limit
}

func (c ProcessPendingTasksCommand) Validate() error {
	return c.guard.Validate(ErrProcessPendingTasksCommandIsNotConstructed)
}
