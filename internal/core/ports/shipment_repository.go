package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Provides methods for storing, retrieving, and querying shipment entities
// together with their status history.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The stored row must still carry the version the aggregate was loaded
	// with; a mismatch fails the update without touching the row.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment with its current status and history.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment aggregate by its public
	// tracking number. Used by tracking lookups and scan ingestion.
	GetByTrackingNumber(ctx context.Context, trackingNumber shipment.TrackingNumber) (*shipment.Shipment, error)

	// GetAllInBag retrieves all shipments currently assigned to the given bag.
	// Used to fan bag-level scan events out to the contained shipments.
	GetAllInBag(ctx context.Context, bagID kernel.UUID) ([]*shipment.Shipment, error)
}
