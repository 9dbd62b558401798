package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

type Type string

const (
	TypeMarkDelivered Type = "marcar_entregado"
)

// Validate accepts only the types this service knows how to run.
func (t Type) Validate() error {
	if t != TypeMarkDelivered {
		return errs.NewValueIsInvalidErrorWithCause("tipo", fmt.Errorf("unknown task type %q", string(t)))
	}
	return nil
}

func (t Type) validateStored() error {
	if strings.TrimSpace(string(t)) == "" {
		return errs.NewValueIsRequiredError("tipo")
	}
	return nil
}

type Status string

const (
	Pending    Status = "pendiente"
	Processing Status = "procesando"
	Completed  Status = "completada"
	Failed     Status = "error"
)

func (s Status) Validate() error {
	switch s {
	case Pending, Processing, Completed, Failed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("estado", fmt.Errorf("unknown task status %q", string(s)))
	}
}

var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or Restore")

// Task is a unit of deferred work. Its lifecycle is
// pendiente -> procesando -> completada | error.
type Task struct { //nolint:recvcheck //setters need pointer receivers
	id           int64
	typ          Type
	payload      json.RawMessage
	status       Status
	createdAt    time.Time
	processedAt  *time.Time
	result       json.RawMessage
	errorMessage string

	guard guard.ConstructorGuard
}

// Snapshot is the persisted state of a task.
type Snapshot struct {
	ID           int64
	Type         Type
	Payload      json.RawMessage
	Status       Status
	CreatedAt    time.Time
	ProcessedAt  *time.Time
	Result       json.RawMessage
	ErrorMessage string
}

func NewTask(typ Type, payload any, createdAt time.Time) (*Task, error) {
	if err := typ.Validate(); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("datos", err)
	}

	return &Task{
		typ:       typ,
		payload:   raw,
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Restore rebuilds a stored task. Types queued by other producers are kept as
// they are so the processor can fail them instead of stalling the queue.
func Restore(snap Snapshot) (*Task, error) {
	if err := errors.Join(snap.Type.validateStored(), snap.Status.Validate()); err != nil {
		return nil, err
	}

	return &Task{
		id:           snap.ID,
		typ:          snap.Type,
		payload:      snap.Payload,
		status:       snap.Status,
		createdAt:    snap.CreatedAt,
		processedAt:  snap.ProcessedAt,
		result:       snap.Result,
		errorMessage: snap.ErrorMessage,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

func (t *Task) AssignID(id int64) error {
	if t.id != 0 {
		return errors.New("task already has an id")
	}
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id, 1, "max int64")
	}
	t.id = id
	return nil
}

func (t *Task) ID() int64 {
	return t.id
}

func (t *Task) Type() Type {
	return t.typ
}

func (t *Task) Status() Status {
	return t.status
}

func (t *Task) Payload() json.RawMessage {
	return t.payload
}

func (t *Task) Result() json.RawMessage {
	return t.result
}

func (t *Task) ErrorMessage() string {
	return t.errorMessage
}

func (t *Task) Snapshot() Snapshot {
	return Snapshot{
		ID:           t.id,
		Type:         t.typ,
		Payload:      t.payload,
		Status:       t.status,
		CreatedAt:    t.createdAt,
		ProcessedAt:  t.processedAt,
		Result:       t.result,
		ErrorMessage: t.errorMessage,
	}
}

// Start claims a pending task for processing.
func (t *Task) Start() error {
	if t.status != Pending {
		return errs.NewInvalidOperationError("start task", fmt.Sprintf("task is %s", t.status))
	}
	t.status = Processing
	return nil
}

func (t *Task) Complete(result any, at time.Time) error {
	if t.status != Processing {
		return errs.NewInvalidOperationError("complete task", fmt.Sprintf("task is %s", t.status))
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("resultado", err)
	}

	t.status = Completed
	t.result = raw
	t.errorMessage = ""
	t.processedAt = &at
	return nil
}

func (t *Task) Fail(cause error, at time.Time) error {
	if t.status != Processing {
		return errs.NewInvalidOperationError("fail task", fmt.Sprintf("task is %s", t.status))
	}
	t.status = Failed
	t.errorMessage = cause.Error()
	t.processedAt = &at
	return nil
}
