package jobs

import (
	"context"
	"log/slog"
	"time"

	"hmpaquetes/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPendingTasksSchedule runs the job every 30 seconds.
const DefaultPendingTasksSchedule = "*/30 * * * * *"

// PendingTasksHandler runs one batch of queued tasks.
type PendingTasksHandler interface {
	Handle(ctx context.Context, command commands.ProcessPendingTasksCommand) (commands.ProcessPendingTasksResult, error)
}

// PendingTaskJob drains the pending task queue on a cron schedule.
// A run that is still in progress when the next tick fires makes that tick a no-op.
type PendingTaskJob struct {
	handler  PendingTasksHandler
	command  commands.ProcessPendingTasksCommand
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingTaskJob creates the job. schedule is a six-field cron expression
// (seconds first) or a descriptor such as "@every 1m"; an empty schedule uses
// DefaultPendingTasksSchedule.
func NewPendingTaskJob(
	handler PendingTasksHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) (*PendingTaskJob, error) {
	cmd, err := commands.NewProcessPendingTasksCommand(batchSize)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultPendingTasksSchedule
	}

	logger = logger.With("component", "pending_task_job")
	return &PendingTaskJob{
		handler:  handler,
		command:  cmd,
		schedule: schedule,
		timeout:  5 * time.Minute,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: logger})),
		),
		logger: logger,
	}, nil
}

func (j *PendingTaskJob) Name() string {
	return "pending_task_job"
}

// Start registers the schedule and starts the scheduler.
func (j *PendingTaskJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending task job started", "schedule", j.schedule)
	return nil
}

// Run processes one batch and logs its outcome.
func (j *PendingTaskJob) Run(ctx context.Context) {
	result, err := j.handler.Handle(ctx, j.command)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending task job failed", "error", err)
		return
	}

	for _, f := range result.Failures {
		j.logger.WarnContext(ctx, "Pending task failed", "task_id", f.TaskID, "error", f.Err)
	}
	if result.Claimed > 0 {
		j.logger.InfoContext(ctx, "Pending tasks processed",
			"claimed", result.Claimed,
			"completed", result.Completed,
			"failed", len(result.Failures),
		)
	}
}

// Stop stops the scheduler and waits for a running batch to finish.
func (j *PendingTaskJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending task job stopped")
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
