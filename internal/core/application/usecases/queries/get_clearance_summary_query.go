package queries

import (
	"errors"

	"logistics/internal/core/domain/model/customs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetClearanceSummaryQueryIsNotConstructed = errors.New(
	"GetClearanceSummaryQuery must be created via NewGetClearanceSummaryQuery constructor",
)

// GetClearanceSummaryQuery retrieves a dashboard summary of the customs
// workload: case counts per sub-status and the total duty still unpaid.
type GetClearanceSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetClearanceSummaryQuery creates a query for the clearance dashboard.
func NewGetClearanceSummaryQuery() GetClearanceSummaryQuery {
	return GetClearanceSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetClearanceSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetClearanceSummaryQueryIsNotConstructed)
}

// GetClearanceSummaryQueryResponse is the clearance dashboard payload.
type GetClearanceSummaryQueryResponse struct {
	CountsBySubStatus map[customs.SubStatus]int
	TotalDutyPending  decimal.Decimal
}
