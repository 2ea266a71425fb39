package queries

import (
	"context"

	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingClearanceQueryHandler reads the open clearance backlog from the
// database, grouped by destination branch.
type GetPendingClearanceQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingClearanceQueryHandler creates a handler for the clearance queue query.
// Requires a GORM database connection for query execution.
func NewGetPendingClearanceQueryHandler(db *gorm.DB) GetPendingClearanceQueryHandler {
	return GetPendingClearanceQueryHandler{db: db}
}

// Handle executes the query.
// Groups appear in destination-branch order; within a group, oldest case first.
func (h GetPendingClearanceQueryHandler) Handle(
	ctx context.Context,
	query GetPendingClearanceQuery,
) ([]PendingClearanceGroup, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.destination_branch_id,
			c.id,
			c.shipment_id,
			s.tracking_number,
			c.sub_status,
			c.hold_reason,
			c.opened_at
		FROM customs_cases c
		JOIN shipments s ON s.id = c.shipment_id
		WHERE c.sub_status NOT IN (?, ?)
		ORDER BY s.destination_branch_id, c.opened_at
	`, customs.Cleared, customs.Rejected).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]PendingClearanceGroup, 0)

	for rows.Next() {
		var branchID, caseID, shipmentID uuid.UUID
		var item PendingClearanceCase
		var subStatus int

		err = rows.Scan(
			&branchID,
			&caseID,
			&shipmentID,
			&item.TrackingNumber,
			&subStatus,
			&item.HoldReason,
			&item.OpenedAt,
		)
		if err != nil {
			return nil, err
		}

		destinationID, idErr := kernel.UUIDFromBytes(branchID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.CaseID, idErr = kernel.UUIDFromBytes(caseID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ShipmentID, idErr = kernel.UUIDFromBytes(shipmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.SubStatus = customs.SubStatus(subStatus)

		if len(groups) == 0 || !groups[len(groups)-1].DestinationBranchID.IsEqual(destinationID) {
			groups = append(groups, PendingClearanceGroup{DestinationBranchID: destinationID})
		}
		last := &groups[len(groups)-1]
		last.Cases = append(last.Cases, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
