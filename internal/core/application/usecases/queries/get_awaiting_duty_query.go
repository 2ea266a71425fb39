package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAwaitingDutyQueryIsNotConstructed = errors.New(
	"GetAwaitingDutyQuery must be created via NewGetAwaitingDutyQuery constructor",
)

// GetAwaitingDutyQuery retrieves cases blocked on duty payment with their
// outstanding amounts.
type GetAwaitingDutyQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAwaitingDutyQuery creates a query for duty-blocked cases.
func NewGetAwaitingDutyQuery() GetAwaitingDutyQuery {
	return GetAwaitingDutyQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAwaitingDutyQuery) Validate() error {
	return q.guard.Validate(ErrGetAwaitingDutyQueryIsNotConstructed)
}

// GetAwaitingDutyQueryResponse is one case awaiting duty payment.
type GetAwaitingDutyQueryResponse struct {
	CaseID         kernel.UUID
	ShipmentID     kernel.UUID
	TrackingNumber string
	TotalDue       decimal.Decimal
	DutyPaid       decimal.Decimal
	Outstanding    decimal.Decimal
}
