package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetBranchMetricsQueryHandler loads raw shipment facts for the branch and
// folds them through the metrics aggregator. The fold honors the request
// context, so a caller deadline cuts a large aggregation short.
type GetBranchMetricsQueryHandler struct {
	db         *gorm.DB
	aggregator services.MetricsAggregator
}

// NewGetBranchMetricsQueryHandler creates a handler for branch metrics queries.
// Requires a GORM database connection for fact loading.
func NewGetBranchMetricsQueryHandler(db *gorm.DB) GetBranchMetricsQueryHandler {
	return GetBranchMetricsQueryHandler{
		db:         db,
		aggregator: services.NewMetricsAggregator(),
	}
}

// Handle executes the query.
func (h GetBranchMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetBranchMetricsQuery,
) (services.MetricsBundle, error) {
	if err := query.Validate(); err != nil {
		return services.MetricsBundle{}, err
	}

	facts, err := h.loadFacts(ctx, query)
	if err != nil {
		return services.MetricsBundle{}, err
	}

	return h.aggregator.Aggregate(
		ctx,
		query.BranchID(),
		query.From(),
		query.To(),
		query.Granularity(),
		facts,
	)
}

func (h GetBranchMetricsQueryHandler) loadFacts(
	ctx context.Context,
	query GetBranchMetricsQuery,
) ([]services.ShipmentFact, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			shipment_id,
			branch_id,
			created_at,
			delivered_at,
			on_time,
			revenue,
			cost
		FROM shipment_facts
		WHERE branch_id = ?
		  AND created_at >= ?
		  AND created_at < ?
		ORDER BY created_at
	`, query.BranchID().Bytes(), query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facts := make([]services.ShipmentFact, 0)

	for rows.Next() {
		var shipmentID, branchID uuid.UUID
		var fact services.ShipmentFact
		var deliveredAt *time.Time
		var onTime *bool
		var revenue, cost decimal.NullDecimal

		err = rows.Scan(
			&shipmentID,
			&branchID,
			&fact.CreatedAt,
			&deliveredAt,
			&onTime,
			&revenue,
			&cost,
		)
		if err != nil {
			return nil, err
		}

		var idErr error
		fact.ShipmentID, idErr = kernel.UUIDFromBytes(shipmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		fact.BranchID, idErr = kernel.UUIDFromBytes(branchID[:])
		if idErr != nil {
			return nil, idErr
		}

		fact.DeliveredAt = deliveredAt
		fact.OnTime = onTime
		if revenue.Valid {
			fact.Revenue = &revenue.Decimal
		}
		if cost.Valid {
			fact.Cost = &cost.Decimal
		}

		facts = append(facts, fact)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return facts, nil
}
