package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentTrackingQueryIsNotConstructed = errors.New(
	"GetShipmentTrackingQuery must be created via NewGetShipmentTrackingQuery constructor",
)

// GetShipmentTrackingQuery retrieves the public tracking view of a shipment:
// its current status and the full transition trail.
//
// Example:
//
//	trackingNumber, _ := shipment.NewTrackingNumber("TRK-2024-00042")
//	query, err := NewGetShipmentTrackingQuery(trackingNumber)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("tracking lookup failed: %w", err)
//	}
//	fmt.Printf("%s is %s\n", view.TrackingNumber, view.Status)
type GetShipmentTrackingQuery struct { //nolint:recvcheck //using for validation
	trackingNumber shipment.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetShipmentTrackingQuery creates a tracking query for one tracking number.
func NewGetShipmentTrackingQuery(trackingNumber shipment.TrackingNumber) (GetShipmentTrackingQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetShipmentTrackingQuery{}, err
	}

	return GetShipmentTrackingQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentTrackingQueryIsNotConstructed)
}

// TrackingNumber returns the queried tracking number.
func (q GetShipmentTrackingQuery) TrackingNumber() shipment.TrackingNumber {
	return q.trackingNumber
}

// TrackingHistoryEntry is one transition in the tracking trail.
type TrackingHistoryEntry struct {
	PriorStatus shipment.Status
	NewStatus   shipment.Status
	Trigger     shipment.Trigger
	Note        string
	OccurredAt  time.Time
}

// GetShipmentTrackingQueryResponse is the tracking view of one shipment.
type GetShipmentTrackingQueryResponse struct {
	TrackingNumber string
	Status         shipment.Status
	History        []TrackingHistoryEntry
}
