package pricing

import (
	"github.com/shopspring/decimal"

	"logistics/internal/core/domain/model/kernel"
)

// VolumeTier is one discount bracket of a contract, activated once the
// customer's cumulative shipped volume reaches VolumeRequirement.
type VolumeTier struct {
	Name              string
	VolumeRequirement int64
	DiscountPercent   decimal.Decimal
}

// Contract holds a customer's negotiated volume tiers. Supplied read-only by
// an external catalog; the cumulative volume counter is maintained outside
// this core.
type Contract struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Active           bool
	CumulativeVolume int64
	Tiers            []VolumeTier
}

// BestTier selects the applicable volume tier: the highest VolumeRequirement
// that the customer's cumulative volume satisfies. Ties on the requirement are
// broken by the higher DiscountPercent. Returns false when no tier applies or
// the contract is inactive.
func (c Contract) BestTier() (VolumeTier, bool) {
	if !c.Active {
		return VolumeTier{}, false
	}

	var best VolumeTier
	found := false
	for _, tier := range c.Tiers {
		if tier.VolumeRequirement > c.CumulativeVolume {
			continue
		}
		if !found ||
			tier.VolumeRequirement > best.VolumeRequirement ||
			(tier.VolumeRequirement == best.VolumeRequirement &&
				tier.DiscountPercent.GreaterThan(best.DiscountPercent)) {
			best = tier
			found = true
		}
	}
	return best, found
}
