package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
)

// RateCardCatalog provides read access to the rate cards and surcharge rules
// a quote is resolved against.
type RateCardCatalog interface {
	// GetActiveRateCards retrieves every active rate card for the lane.
	// Cards are returned in priority order; the resolver takes the first match.
	GetActiveRateCards(ctx context.Context, originZone, destinationZone string) ([]pricing.RateCard, error)

	// GetSurchargeRules retrieves the full surcharge rule set.
	GetSurchargeRules(ctx context.Context) ([]pricing.SurchargeRule, error)
}

// ContractCatalog provides read access to customer volume contracts.
type ContractCatalog interface {
	// GetActiveContract retrieves the active contract for a customer.
	// Returns nil without error when the customer has no active contract.
	GetActiveContract(ctx context.Context, customerID kernel.UUID) (*pricing.Contract, error)
}

// CampaignCatalog provides access to promotional campaigns.
type CampaignCatalog interface {
	// GetByCode retrieves a campaign by its promotion code.
	GetByCode(ctx context.Context, code string) (*pricing.Campaign, error)

	CampaignReservations
}

// CampaignReservations claims campaign redemptions. A unit of work exposes a
// transaction-bound instance so reservations commit and roll back with the
// booking they belong to.
type CampaignReservations interface {
	// ReserveUsage atomically claims one redemption of the campaign.
	// Fails when the campaign's usage limit is already exhausted, so two
	// concurrent bookings cannot both take the last slot.
	ReserveUsage(ctx context.Context, code string) error
}
