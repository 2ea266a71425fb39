package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentTrackingQueryHandler resolves a tracking number to the
// shipment's current status and ordered transition trail.
type GetShipmentTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentTrackingQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentTrackingQueryHandler(db *gorm.DB) GetShipmentTrackingQueryHandler {
	return GetShipmentTrackingQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the tracking number is unknown.
func (h GetShipmentTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentTrackingQuery,
) (GetShipmentTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	trackingNumber := query.TrackingNumber().String()

	var status int
	row := h.db.WithContext(ctx).Raw(`
		SELECT status FROM shipments WHERE tracking_number = ?
	`, trackingNumber).Row()
	if err := row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentTrackingQueryResponse{},
				errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
		}
		return GetShipmentTrackingQueryResponse{}, err
	}

	response := GetShipmentTrackingQueryResponse{
		TrackingNumber: trackingNumber,
		Status:         shipment.Status(status),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			h.prior_status,
			h.new_status,
			h.trigger,
			h.note,
			h.occurred_at
		FROM shipment_history h
		JOIN shipments s ON s.id = h.shipment_id
		WHERE s.tracking_number = ?
		ORDER BY h.seq
	`, trackingNumber).Rows()
	if err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry TrackingHistoryEntry
		var prior, next, trigger int

		err = rows.Scan(
			&prior,
			&next,
			&trigger,
			&entry.Note,
			&entry.OccurredAt,
		)
		if err != nil {
			return GetShipmentTrackingQueryResponse{}, err
		}

		entry.PriorStatus = shipment.Status(prior)
		entry.NewStatus = shipment.Status(next)
		entry.Trigger = shipment.Trigger(trigger)
		response.History = append(response.History, entry)
	}

	if err = rows.Err(); err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	return response, nil
}
