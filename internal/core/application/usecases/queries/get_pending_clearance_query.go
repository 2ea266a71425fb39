// Package queries contains read-only operations against the database.
// Implements the Query side of the CQRS architecture: handlers read with raw
// SQL and return dedicated response models instead of aggregates.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetPendingClearanceQueryIsNotConstructed = errors.New(
	"GetPendingClearanceQuery must be created via NewGetPendingClearanceQuery constructor",
)

// GetPendingClearanceQuery retrieves every open customs case grouped by the
// shipment's destination branch, for the clearance work queue.
//
// Example:
//
//	query := NewGetPendingClearanceQuery()
//	handler := NewGetPendingClearanceQueryHandler(db)
//
//	groups, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load clearance queue: %w", err)
//	}
//	for _, group := range groups {
//	    fmt.Printf("branch %s: %d cases\n", group.DestinationBranchID, len(group.Cases))
//	}
type GetPendingClearanceQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingClearanceQuery creates a query for the clearance work queue.
// This is a parameterless query covering all branches.
func NewGetPendingClearanceQuery() GetPendingClearanceQuery {
	return GetPendingClearanceQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingClearanceQueryIsNotConstructed if validation fails.
func (q GetPendingClearanceQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingClearanceQueryIsNotConstructed)
}

// PendingClearanceCase is one open case in the clearance queue.
type PendingClearanceCase struct {
	CaseID         kernel.UUID
	ShipmentID     kernel.UUID
	TrackingNumber string
	SubStatus      customs.SubStatus
	HoldReason     string
	OpenedAt       time.Time
}

// PendingClearanceGroup holds all open cases bound for one destination branch.
type PendingClearanceGroup struct {
	DestinationBranchID kernel.UUID
	Cases               []PendingClearanceCase
}
