package commands

import (
	"context"
	"fmt"
	"time"

	"hmpaquetes/internal/core/domain/model/task"
)

// TaskFailure describes a task that ended in the error status.
type TaskFailure struct {
	TaskID int64
	Err    error
}

// ProcessPendingTasksResult summarizes one batch.
type ProcessPendingTasksResult struct {
	Claimed   int
	Completed int
	Failures  []TaskFailure
}

// ProcessPendingTasksCommandHandler claims pending tasks and runs each one in
// its own transaction, so one failing task never blocks the others.
//
// Supported task types:
//   - marcar_entregado: confirms a dispatch item and marks its shipment delivered
//
// Example:
//
//	handler := NewProcessPendingTasksCommandHandler(uowFactory, loc)
//	cmd, _ := NewProcessPendingTasksCommand(50)
//	result, err := handler.Handle(ctx, cmd)
//	for _, f := range result.Failures {
//	    log.Printf("task %d failed: %v", f.TaskID, f.Err)
//	}
type ProcessPendingTasksCommandHandler struct {
	uowFactory TaskUoWFactory
	loc        *time.Location
	now        func() time.Time
}

// NewProcessPendingTasksCommandHandler creates the handler. loc is the zone
// delivery dates are interpreted in.
func NewProcessPendingTasksCommandHandler(uowFactory TaskUoWFactory, loc *time.Location) ProcessPendingTasksCommandHandler {
	if loc == nil {
		loc = time.UTC
	}
	return ProcessPendingTasksCommandHandler{
		uowFactory: uowFactory,
		loc:        loc,
		now:        time.Now,
	}
}

// Handle returns an error only when tasks cannot be claimed or a task outcome
// cannot be recorded. Failures of individual tasks are reported in the result.
func (h ProcessPendingTasksCommandHandler) Handle(
	ctx context.Context,
	command ProcessPendingTasksCommand,
) (ProcessPendingTasksResult, error) {
	var result ProcessPendingTasksResult
	if err := command.Validate(); err != nil {
		return result, err
	}

	tasks, err := h.claim(ctx, command.Limit())
	if err != nil {
		return result, err
	}
	result.Claimed = len(tasks)

	for _, t := range tasks {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		claimed := t.Snapshot()
		runErr := h.run(ctx, t)
		if runErr == nil {
			result.Completed++
			continue
		}

		if err = h.recordFailure(ctx, claimed, runErr); err != nil {
			return result, fmt.Errorf("record failure of task %d: %w", claimed.ID, err)
		}
		result.Failures = append(result.Failures, TaskFailure{TaskID: claimed.ID, Err: runErr})
	}

	return result, nil
}

func (h ProcessPendingTasksCommandHandler) claim(ctx context.Context, limit int) ([]*task.Task, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tasks, err := uow.TaskRepository().ClaimPending(ctx, limit)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (h ProcessPendingTasksCommandHandler) run(ctx context.Context, t *task.Task) error {
	switch t.Type() {
	case task.TypeMarkDelivered:
		return h.markDelivered(ctx, t)
	default:
		return fmt.Errorf("unsupported task type %q", t.Type())
	}
}

func (h ProcessPendingTasksCommandHandler) markDelivered(ctx context.Context, t *task.Task) error {
	payload, err := t.DecodeMarkDelivered()
	if err != nil {
		return err
	}

	now := h.now()
	deliveredOn, err := payload.DeliveryDate(now, h.loc)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	shipmentRepo := uow.ShipmentRepository()

	item, err := itemRepo.Get(ctx, payload.ItemID)
	if err != nil {
		return err
	}

	s, err := shipmentRepo.Get(ctx, item.ShipmentID())
	if err != nil {
		return err
	}

	if err = item.ConfirmDelivery(s, deliveredOn, payload.Photo); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = t.Complete(task.MarkDeliveredResult{ShipmentCode: s.Code()}, now); err != nil {
		return err
	}

	if err = uow.TaskRepository().Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// recordFailure starts from the claimed state, since a failed run may have
// left the in-memory task half updated.
func (h ProcessPendingTasksCommandHandler) recordFailure(ctx context.Context, claimed task.Snapshot, cause error) error {
	t, err := task.Restore(claimed)
	if err != nil {
		return err
	}
	if err = t.Fail(cause, h.now()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TaskRepository().Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
