package queries

import (
	"context"

	"logistics/internal/core/domain/model/customs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetClearanceSummaryQueryHandler aggregates the customs workload in SQL.
type GetClearanceSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetClearanceSummaryQueryHandler creates a handler for the clearance summary query.
// Requires a GORM database connection for query execution.
func NewGetClearanceSummaryQueryHandler(db *gorm.DB) GetClearanceSummaryQueryHandler {
	return GetClearanceSummaryQueryHandler{db: db}
}

// Handle executes the query.
// Duty pending sums only open cases; cleared and rejected cases keep their
// payment records but no longer owe anything.
func (h GetClearanceSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetClearanceSummaryQuery,
) (GetClearanceSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetClearanceSummaryQueryResponse{}, err
	}

	response := GetClearanceSummaryQueryResponse{
		CountsBySubStatus: make(map[customs.SubStatus]int),
		TotalDutyPending:  decimal.Zero,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sub_status,
			COUNT(*),
			COALESCE(SUM(
				CASE WHEN sub_status NOT IN (?, ?)
					THEN GREATEST(duty_assessed + tax_assessed - duty_paid, 0)
					ELSE 0
				END
			), 0)
		FROM customs_cases
		GROUP BY sub_status
	`, customs.Cleared, customs.Rejected).Rows()
	if err != nil {
		return GetClearanceSummaryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var subStatus, count int
		var pending decimal.Decimal

		if err = rows.Scan(&subStatus, &count, &pending); err != nil {
			return GetClearanceSummaryQueryResponse{}, err
		}

		response.CountsBySubStatus[customs.SubStatus(subStatus)] = count
		response.TotalDutyPending = response.TotalDutyPending.Add(pending)
	}

	if err = rows.Err(); err != nil {
		return GetClearanceSummaryQueryResponse{}, err
	}

	return response, nil
}
