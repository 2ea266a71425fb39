// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the shipment service.
//
// # Available Jobs
//
// 1. MetricsRefreshJob - Periodically rebuilds the shipment facts table that
// branch metrics queries read from, so delivery and revenue figures stay
// close to the live shipment data.
// 2. CustomsBacklogJob - Periodically reports the customs clearance backlog
// (open cases per sub-status and outstanding duty) to the log so operators
// notice aging holds.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(db, clearanceSummaryHandler, schedules, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Each job takes a standard five-field cron expression from configuration.
// Defaults refresh metrics every five minutes and report the customs backlog
// hourly.
//
// # Error Handling
//
// Job runs that fail are logged and retried on the next scheduled tick;
// a failed run never stops the schedule. Failed job starts stop any jobs
// already running.
package jobs
