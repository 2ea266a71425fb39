package ports

import (
	"context"

	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/kernel"
)

// CustomsCaseRepository defines the persistence contract for customs case
// aggregates.
type CustomsCaseRepository interface {
	// Add persists a new customs case aggregate to storage.
	Add(ctx context.Context, aggregate *customs.Case) error

	// Update persists changes to an existing customs case aggregate.
	Update(ctx context.Context, aggregate *customs.Case) error

	// Get retrieves a customs case aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customs.Case, error)

	// GetByShipment retrieves the open customs case attached to a shipment.
	// A shipment carries at most one open case at a time.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*customs.Case, error)
}
