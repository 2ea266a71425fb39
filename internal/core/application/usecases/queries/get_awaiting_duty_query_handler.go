package queries

import (
	"context"

	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAwaitingDutyQueryHandler lists cases in DutyRequired together with what
// is still owed on each.
type GetAwaitingDutyQueryHandler struct {
	db *gorm.DB
}

// NewGetAwaitingDutyQueryHandler creates a handler for the awaiting-duty query.
// Requires a GORM database connection for query execution.
func NewGetAwaitingDutyQueryHandler(db *gorm.DB) GetAwaitingDutyQueryHandler {
	return GetAwaitingDutyQueryHandler{db: db}
}

// Handle executes the query. Largest outstanding amount first.
func (h GetAwaitingDutyQueryHandler) Handle(
	ctx context.Context,
	query GetAwaitingDutyQuery,
) ([]GetAwaitingDutyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.shipment_id,
			s.tracking_number,
			c.duty_assessed + c.tax_assessed AS total_due,
			c.duty_paid
		FROM customs_cases c
		JOIN shipments s ON s.id = c.shipment_id
		WHERE c.sub_status = ?
		ORDER BY c.duty_assessed + c.tax_assessed - c.duty_paid DESC
	`, customs.DutyRequired).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetAwaitingDutyQueryResponse, 0)

	for rows.Next() {
		var caseID, shipmentID uuid.UUID
		var item GetAwaitingDutyQueryResponse

		err = rows.Scan(
			&caseID,
			&shipmentID,
			&item.TrackingNumber,
			&item.TotalDue,
			&item.DutyPaid,
		)
		if err != nil {
			return nil, err
		}

		var idErr error
		item.CaseID, idErr = kernel.UUIDFromBytes(caseID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ShipmentID, idErr = kernel.UUIDFromBytes(shipmentID[:])
		if idErr != nil {
			return nil, idErr
		}

		item.Outstanding = item.TotalDue.Sub(item.DutyPaid)
		if item.Outstanding.IsNegative() {
			item.Outstanding = decimal.Zero
		}
		responses = append(responses, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
