package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/shipment"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// MetricsRefreshJob periodically rebuilds the shipment_facts table from the
// shipments and history tables. Branch metrics queries read facts instead of
// joining live tables, so the fold over a reporting window stays cheap.
type MetricsRefreshJob struct {
	db       *gorm.DB
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewMetricsRefreshJob creates a job that refreshes shipment facts on the
// given cron schedule (standard five-field expression).
func NewMetricsRefreshJob(db *gorm.DB, schedule string, logger *slog.Logger) *MetricsRefreshJob {
	return &MetricsRefreshJob{
		db:       db,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "metrics_refresh_job"),
	}
}

// Start begins the refresh schedule.
func (j *MetricsRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Metrics refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Metrics refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the refresh schedule.
func (j *MetricsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Metrics refresh job stopped")
}

// refresh upserts one fact row per shipment. Booking time comes from the
// first history row, delivery time from the first history entry that moved
// the shipment into Delivered, revenue from the persisted pricing snapshot.
// Cost and on-time flags are loaded by the finance import and are left
// untouched here.
func (j *MetricsRefreshJob) refresh(ctx context.Context) error {
	result := j.db.WithContext(ctx).Exec(`
		INSERT INTO shipment_facts (shipment_id, branch_id, created_at, delivered_at, revenue)
		SELECT
			s.id,
			s.destination_branch_id,
			b.occurred_at,
			d.delivered_at,
			NULLIF(s.pricing ->> 'total', '')::numeric
		FROM shipments s
		JOIN shipment_history b ON b.shipment_id = s.id AND b.seq = 0
		LEFT JOIN (
			SELECT shipment_id, MIN(occurred_at) AS delivered_at
			FROM shipment_history
			WHERE new_status = ?
			GROUP BY shipment_id
		) d ON d.shipment_id = s.id
		ON CONFLICT (shipment_id) DO UPDATE SET
			branch_id    = EXCLUDED.branch_id,
			created_at   = EXCLUDED.created_at,
			delivered_at = EXCLUDED.delivered_at,
			revenue      = EXCLUDED.revenue`,
		int(shipment.Delivered),
	)
	if result.Error != nil {
		return result.Error
	}

	j.logger.InfoContext(ctx, "Shipment facts refreshed", "rows", result.RowsAffected)
	return nil
}
