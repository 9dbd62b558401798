// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PendingTaskJob - Claims queued tareas pendientes (for example marcar_entregado)
// and runs them, every 30 seconds by default
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	job, err := jobs.NewPendingTaskJob(processHandler, cfg.PendingTasksSchedule, cfg.PendingTasksBatchSize, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(job)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six-field cron expressions with a leading seconds field.
// Runs never overlap: a tick that fires while the previous batch is still
// running is skipped.
//
// # Error Handling
//
// - Failures of individual tasks are logged as warnings; the task itself is marked as failed
// - Errors claiming or recording tasks are logged as errors and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
