package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// Schedules carries the cron expressions for each scheduled job.
type Schedules struct {
	MetricsRefresh string
	CustomsBacklog string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	metricsRefreshJob *MetricsRefreshJob
	customsBacklogJob *CustomsBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	db *gorm.DB,
	clearanceSummaryHandler queries.GetClearanceSummaryQueryHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		metricsRefreshJob: NewMetricsRefreshJob(db, schedules.MetricsRefresh, logger),
		customsBacklogJob: NewCustomsBacklogJob(clearanceSummaryHandler, schedules.CustomsBacklog, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.metricsRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start metrics refresh job: %w", err)
	}

	if err := jm.customsBacklogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.metricsRefreshJob.Stop()
		return fmt.Errorf("failed to start customs backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.metricsRefreshJob.Stop()
	jm.customsBacklogJob.Stop()
}
