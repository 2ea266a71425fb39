package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CustomsBacklogJob periodically reports the open customs clearance backlog.
// It reuses the clearance summary query and writes the per-sub-status counts
// and outstanding duty to the log.
type CustomsBacklogJob struct {
	handler  queries.GetClearanceSummaryQueryHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewCustomsBacklogJob creates a job that reports the customs backlog on the
// given cron schedule (standard five-field expression).
func NewCustomsBacklogJob(
	handler queries.GetClearanceSummaryQueryHandler,
	schedule string,
	logger *slog.Logger,
) *CustomsBacklogJob {
	return &CustomsBacklogJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "customs_backlog_job"),
	}
}

// Start begins the backlog reporting schedule.
func (j *CustomsBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Customs backlog report failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Customs backlog job started", "schedule", j.schedule)
	return nil
}

// Stop stops the backlog reporting schedule.
func (j *CustomsBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Customs backlog job stopped")
}

func (j *CustomsBacklogJob) report(ctx context.Context) error {
	summary, err := j.handler.Handle(ctx, queries.NewGetClearanceSummaryQuery())
	if err != nil {
		return err
	}

	open := 0
	attrs := make([]any, 0, 2*len(summary.CountsBySubStatus)+4)
	for subStatus, count := range summary.CountsBySubStatus {
		open += count
		attrs = append(attrs, subStatus.String(), count)
	}
	attrs = append(attrs,
		"openCases", open,
		"dutyPending", summary.TotalDutyPending.String(),
	)

	j.logger.InfoContext(ctx, "Customs clearance backlog", attrs...)
	return nil
}
