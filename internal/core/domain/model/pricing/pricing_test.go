package pricing_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRateCard_Matches(t *testing.T) {
	card := pricing.RateCard{
		ID:              "rc-1",
		OriginZone:      "EU-WEST",
		DestinationZone: "US-EAST",
		ServiceLevel:    "express",
		MinWeightKg:     dec("0"),
		MaxWeightKg:     dec("10"),
		BaseAmount:      dec("50"),
		PerKgAmount:     dec("2"),
		EffectiveFrom:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:          true,
	}
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should match route, service and weight in window", func(t *testing.T) {
		assert.True(t, card.Matches("EU-WEST", "US-EAST", "express", dec("5"), now))
	})

	t.Run("should include min weight and exclude max weight", func(t *testing.T) {
		assert.True(t, card.Matches("EU-WEST", "US-EAST", "express", dec("0"), now))
		assert.False(t, card.Matches("EU-WEST", "US-EAST", "express", dec("10"), now))
	})

	t.Run("should treat zero max weight as unbounded", func(t *testing.T) {
		open := card
		open.MaxWeightKg = decimal.Zero

		assert.True(t, open.Matches("EU-WEST", "US-EAST", "express", dec("5000"), now))
	})

	t.Run("should reject outside the effective window", func(t *testing.T) {
		assert.False(t, card.Matches("EU-WEST", "US-EAST", "express", dec("5"),
			time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))

		expiring := card
		to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		expiring.EffectiveTo = &to
		assert.False(t, expiring.Matches("EU-WEST", "US-EAST", "express", dec("5"), now))
	})

	t.Run("should reject inactive cards and wrong lanes", func(t *testing.T) {
		inactive := card
		inactive.Active = false
		assert.False(t, inactive.Matches("EU-WEST", "US-EAST", "express", dec("5"), now))

		assert.False(t, card.Matches("EU-EAST", "US-EAST", "express", dec("5"), now))
		assert.False(t, card.Matches("EU-WEST", "US-EAST", "standard", dec("5"), now))
	})
}

func TestSurchargeRule(t *testing.T) {
	t.Run("should always apply the unconditional rule", func(t *testing.T) {
		fuel := pricing.SurchargeRule{Code: "FUEL", PercentOfBase: dec("8")}

		assert.True(t, fuel.AppliesTo(false, false))
		assert.True(t, fuel.AmountFor(dec("100")).Equal(dec("8")))
	})

	t.Run("should apply option rules only when the option is set", func(t *testing.T) {
		hazmat := pricing.SurchargeRule{
			Code: "HAZMAT", FlatAmount: dec("25"),
			RequiresOption: pricing.SurchargeOptionHazmat,
		}
		remote := pricing.SurchargeRule{
			Code: "REMOTE", FlatAmount: dec("15"),
			RequiresOption: pricing.SurchargeOptionRemoteArea,
		}

		assert.True(t, hazmat.AppliesTo(true, false))
		assert.False(t, hazmat.AppliesTo(false, true))
		assert.True(t, remote.AppliesTo(false, true))
		assert.False(t, remote.AppliesTo(true, false))
	})

	t.Run("should combine flat and percentage parts", func(t *testing.T) {
		rule := pricing.SurchargeRule{Code: "X", FlatAmount: dec("10"), PercentOfBase: dec("5")}

		assert.True(t, rule.AmountFor(dec("200")).Equal(dec("20")))
	})
}

func TestContract_BestTier(t *testing.T) {
	contract := pricing.Contract{
		ID:               kernel.NewUUID(),
		CustomerID:       kernel.NewUUID(),
		Active:           true,
		CumulativeVolume: 500,
		Tiers: []pricing.VolumeTier{
			{Name: "bronze", VolumeRequirement: 100, DiscountPercent: dec("2")},
			{Name: "silver", VolumeRequirement: 500, DiscountPercent: dec("5")},
			{Name: "gold", VolumeRequirement: 1000, DiscountPercent: dec("10")},
		},
	}

	t.Run("should pick the highest satisfied requirement", func(t *testing.T) {
		tier, ok := contract.BestTier()

		require.True(t, ok)
		assert.Equal(t, "silver", tier.Name)
	})

	t.Run("should break requirement ties by higher discount", func(t *testing.T) {
		tied := contract
		tied.Tiers = []pricing.VolumeTier{
			{Name: "a", VolumeRequirement: 500, DiscountPercent: dec("3")},
			{Name: "b", VolumeRequirement: 500, DiscountPercent: dec("7")},
		}

		tier, ok := tied.BestTier()

		require.True(t, ok)
		assert.Equal(t, "b", tier.Name)
	})

	t.Run("should find nothing below every requirement", func(t *testing.T) {
		low := contract
		low.CumulativeVolume = 50

		_, ok := low.BestTier()

		assert.False(t, ok)
	})

	t.Run("should find nothing on an inactive contract", func(t *testing.T) {
		inactive := contract
		inactive.Active = false

		_, ok := inactive.BestTier()

		assert.False(t, ok)
	})
}

func TestCampaign_EligibilityError(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	campaign := pricing.Campaign{
		Code:                  "SUMMER10",
		Active:                true,
		PercentOff:            dec("10"),
		EffectiveFrom:         time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EffectiveTo:           time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		EligibleCustomerTypes: []string{"retail"},
		UsageCount:            10,
		UsageLimit:            100,
	}

	t.Run("should accept an eligible retail customer in window", func(t *testing.T) {
		require.NoError(t, campaign.EligibilityError("retail", now))
	})

	t.Run("should reject expired campaign", func(t *testing.T) {
		err := campaign.EligibilityError("retail", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

		require.ErrorIs(t, err, pricing.ErrInvalidPromotionCode)
		assert.Contains(t, err.Error(), pricing.PromoReasonExpired)
	})

	t.Run("should reject inactive campaign", func(t *testing.T) {
		inactive := campaign
		inactive.Active = false

		err := inactive.EligibilityError("retail", now)

		require.ErrorIs(t, err, pricing.ErrInvalidPromotionCode)
		assert.Contains(t, err.Error(), pricing.PromoReasonInactive)
	})

	t.Run("should reject ineligible customer type", func(t *testing.T) {
		err := campaign.EligibilityError("corporate", now)

		require.ErrorIs(t, err, pricing.ErrInvalidPromotionCode)
		assert.Contains(t, err.Error(), pricing.PromoReasonIneligible)
	})

	t.Run("should accept any customer type when the set is empty", func(t *testing.T) {
		open := campaign
		open.EligibleCustomerTypes = nil

		require.NoError(t, open.EligibilityError("corporate", now))
	})

	t.Run("should reject exhausted usage limit", func(t *testing.T) {
		exhausted := campaign
		exhausted.UsageCount = 100

		err := exhausted.EligibilityError("retail", now)

		require.ErrorIs(t, err, pricing.ErrInvalidPromotionCode)
		assert.Contains(t, err.Error(), pricing.PromoReasonUsageExhausted)
	})

	t.Run("should treat zero usage limit as unlimited", func(t *testing.T) {
		unlimited := campaign
		unlimited.UsageLimit = 0
		unlimited.UsageCount = 1_000_000

		require.NoError(t, unlimited.EligibilityError("retail", now))
	})
}

func TestCampaign_DiscountFor(t *testing.T) {
	t.Run("should combine percent and flat parts", func(t *testing.T) {
		campaign := pricing.Campaign{Code: "C", PercentOff: dec("10"), FlatOff: dec("5")}

		assert.True(t, campaign.DiscountFor(dec("100")).Equal(dec("15")))
	})

	t.Run("should clamp to the percent cap", func(t *testing.T) {
		capPercent := dec("12")
		campaign := pricing.Campaign{Code: "C", PercentOff: dec("20"), DiscountCapPercent: &capPercent}

		assert.True(t, campaign.DiscountFor(dec("100")).Equal(dec("12")))
	})

	t.Run("should clamp to the maximum amount", func(t *testing.T) {
		maxAmount := dec("8")
		campaign := pricing.Campaign{Code: "C", PercentOff: dec("20"), MaximumDiscountAmount: &maxAmount}

		assert.True(t, campaign.DiscountFor(dec("100")).Equal(dec("8")))
	})
}

func TestBreakdown_Totals(t *testing.T) {
	b := pricing.Breakdown{
		Currency:         "USD",
		Base:             dec("50"),
		WeightCharge:     dec("10"),
		Surcharges:       []pricing.SurchargeLine{{Code: "FUEL", Amount: dec("4.80")}},
		ContractDiscount: dec("3"),
		PromoDiscounts:   []pricing.DiscountLine{{Code: "SUMMER10", Amount: dec("6")}},
	}

	assert.True(t, b.SurchargeTotal().Equal(dec("4.80")))
	assert.True(t, b.DiscountTotal().Equal(dec("9")))
}
