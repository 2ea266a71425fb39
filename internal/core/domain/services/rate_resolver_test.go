package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/core/domain/services"

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

var quoteTime = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

// baseInput is a quote that resolves to a $50 base with no weight charge,
// surcharges, insurance or tax, so discount arithmetic reads directly.
func baseInput() services.RateInput {
	return services.RateInput{
		OriginZone:      "EU-WEST",
		DestinationZone: "US-EAST",
		ServiceLevel:    "express",
		WeightKg:        dec("1"),
		CustomerType:    "retail",
		RateCards: []pricing.RateCard{{
			ID:              "rc-1",
			OriginZone:      "EU-WEST",
			DestinationZone: "US-EAST",
			ServiceLevel:    "express",
			MaxWeightKg:     dec("10"),
			BaseAmount:      dec("50"),
			EffectiveFrom:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Active:          true,
		}},
		Now: quoteTime,
	}
}

func activeContract(percent string) *pricing.Contract {
	return &pricing.Contract{
		ID:               kernel.NewUUID(),
		CustomerID:       kernel.NewUUID(),
		Active:           true,
		CumulativeVolume: 1000,
		Tiers: []pricing.VolumeTier{
			{Name: "tier", VolumeRequirement: 100, DiscountPercent: dec(percent)},
		},
	}
}

func activeCampaign(code, percentOff string, stacking bool) pricing.Campaign {
	return pricing.Campaign{
		Code:            code,
		Active:          true,
		PercentOff:      dec(percentOff),
		EffectiveFrom:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EffectiveTo:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		StackingAllowed: stacking,
	}
}

func TestRateResolver_Resolve(t *testing.T) {
	resolver := services.NewRateResolver()

	t.Run("should price base plus weight charge", func(t *testing.T) {
		input := baseInput()
		input.WeightKg = dec("4")
		input.RateCards[0].PerKgAmount = dec("2.50")

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		assert.True(t, b.Base.Equal(dec("50")))
		assert.True(t, b.WeightCharge.Equal(dec("10")))
		assert.True(t, b.Subtotal.Equal(dec("60")))
		assert.True(t, b.Total.Equal(dec("60")))
		assert.Equal(t, "USD", b.Currency)
	})

	t.Run("should fail when no card matches", func(t *testing.T) {
		input := baseInput()
		input.ServiceLevel = "standard"

		_, err := resolver.Resolve(input)

		require.ErrorIs(t, err, pricing.ErrNoApplicableRateCard)
		var cardErr *pricing.NoApplicableRateCardError
		require.ErrorAs(t, err, &cardErr)
		assert.Equal(t, "standard", cardErr.ServiceLevel)
	})

	t.Run("should pick the first matching card", func(t *testing.T) {
		input := baseInput()
		second := input.RateCards[0]
		second.ID = "rc-2"
		second.BaseAmount = dec("40")
		input.RateCards = append(input.RateCards, second)

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		assert.True(t, b.Base.Equal(dec("50")))
	})

	t.Run("should apply surcharges on the freight charge", func(t *testing.T) {
		input := baseInput()
		input.Options.HazmatDeclared = true
		input.Surcharges = []pricing.SurchargeRule{
			{Code: "FUEL", PercentOfBase: dec("8")},
			{Code: "HAZMAT", FlatAmount: dec("25"), RequiresOption: pricing.SurchargeOptionHazmat},
			{Code: "REMOTE", FlatAmount: dec("15"), RequiresOption: pricing.SurchargeOptionRemoteArea},
		}

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		require.Len(t, b.Surcharges, 2)
		assert.True(t, b.SurchargeTotal().Equal(dec("29")))
		assert.True(t, b.Subtotal.Equal(dec("79")))
	})

	t.Run("should charge insurance from the declared value", func(t *testing.T) {
		input := baseInput()
		input.Options.InsuredValue = dec("1000")
		input.InsurancePercent = dec("1.5")

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		assert.True(t, b.Insurance.Equal(dec("15")))
		assert.True(t, b.Subtotal.Equal(dec("65")))
	})

	t.Run("should apply the contract volume discount", func(t *testing.T) {
		input := baseInput()
		input.Contract = activeContract("5")

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		assert.True(t, b.ContractDiscount.Equal(dec("2.50")))
		assert.True(t, b.Total.Equal(dec("47.50")))
	})

	t.Run("should let a larger non-stacking promo replace the contract discount", func(t *testing.T) {
		input := baseInput()
		input.Contract = activeContract("5")
		input.Campaigns = []pricing.Campaign{activeCampaign("TEN", "10", false)}

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		assert.True(t, b.ContractDiscount.IsZero())
		require.Len(t, b.PromoDiscounts, 1)
		assert.True(t, b.PromoDiscounts[0].Amount.Equal(dec("5")))
		assert.True(t, b.Total.Equal(dec("45")))
	})

	t.Run("should keep the contract discount over a smaller non-stacking promo", func(t *testing.T) {
		input := baseInput()
		input.Contract = activeContract("10")
		input.Campaigns = []pricing.Campaign{activeCampaign("THREE", "3", false)}

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		assert.True(t, b.ContractDiscount.Equal(dec("5")))
		assert.Empty(t, b.PromoDiscounts)
	})

	t.Run("should stack stacking-allowed promos with the contract discount", func(t *testing.T) {
		input := baseInput()
		input.Contract = activeContract("5")
		input.Campaigns = []pricing.Campaign{
			activeCampaign("A", "4", true),
			activeCampaign("B", "6", true),
		}

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		assert.True(t, b.ContractDiscount.Equal(dec("2.50")))
		require.Len(t, b.PromoDiscounts, 2)
		assert.True(t, b.DiscountTotal().Equal(dec("7.50")))
		assert.True(t, b.Total.Equal(dec("42.50")))
	})

	t.Run("should cap the stacked total at the strictest declared cap", func(t *testing.T) {
		strictCap := dec("5")
		strict := activeCampaign("STRICT", "10", true)
		strict.DiscountCapPercent = &strictCap
		input := baseInput()
		input.Campaigns = []pricing.Campaign{
			activeCampaign("LOOSE", "10", true),
			strict,
		}

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		// The strict campaign caps the combined promotional total at 5%
		// of the subtotal, not just its own line.
		assert.True(t, b.DiscountTotal().Equal(dec("2.50")))
	})

	t.Run("should reject mixing a non-stacking promo with another promo", func(t *testing.T) {
		input := baseInput()
		input.Campaigns = []pricing.Campaign{
			activeCampaign("SOLO", "10", false),
			activeCampaign("OTHER", "5", true),
		}

		_, err := resolver.Resolve(input)

		require.ErrorIs(t, err, pricing.ErrInvalidPromotionCode)
		assert.Contains(t, err.Error(), pricing.PromoReasonNotStackable)
	})

	t.Run("should reject an expired campaign", func(t *testing.T) {
		expired := activeCampaign("OLD", "10", true)
		expired.EffectiveTo = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		input := baseInput()
		input.Campaigns = []pricing.Campaign{expired}

		_, err := resolver.Resolve(input)

		require.ErrorIs(t, err, pricing.ErrInvalidPromotionCode)
		assert.Contains(t, err.Error(), pricing.PromoReasonExpired)
	})

	t.Run("should never discount below zero", func(t *testing.T) {
		input := baseInput()
		huge := activeCampaign("HUGE", "90", true)
		huge.FlatOff = dec("100")
		input.Campaigns = []pricing.Campaign{huge}

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		assert.True(t, b.DiscountTotal().Equal(b.Subtotal))
		assert.True(t, b.Total.IsZero())
	})

	t.Run("should clamp an oversized contract discount to the subtotal", func(t *testing.T) {
		input := baseInput()
		input.Contract = activeContract("150")

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		assert.True(t, b.ContractDiscount.Equal(b.Subtotal))
		assert.Empty(t, b.PromoDiscounts)
		assert.True(t, b.Total.IsZero())
	})

	t.Run("should zero promo lines before trimming the contract discount", func(t *testing.T) {
		input := baseInput()
		input.Contract = activeContract("150")
		input.Campaigns = []pricing.Campaign{activeCampaign("TEN", "10", true)}

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		require.Len(t, b.PromoDiscounts, 1)
		assert.True(t, b.PromoDiscounts[0].Amount.IsZero())
		assert.True(t, b.ContractDiscount.Equal(b.Subtotal))
		assert.True(t, b.Total.IsZero())
	})

	t.Run("should keep every discount line non-negative under capped stacking", func(t *testing.T) {
		strictCap := dec("2")
		strict := activeCampaign("STRICT", "90", true)
		strict.DiscountCapPercent = &strictCap
		loose := activeCampaign("LOOSE", "90", true)
		loose.FlatOff = dec("100")
		input := baseInput()
		input.Contract = activeContract("120")
		input.Campaigns = []pricing.Campaign{loose, strict}

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		for _, line := range b.PromoDiscounts {
			assert.False(t, line.Amount.IsNegative(), "line %s went negative", line.Code)
		}
		assert.False(t, b.ContractDiscount.IsNegative())
		assert.True(t, b.DiscountTotal().Equal(b.Subtotal))
		assert.True(t, b.Total.IsZero())
	})

	t.Run("should apply tax to the discounted subtotal", func(t *testing.T) {
		input := baseInput()
		input.Contract = activeContract("10")
		input.TaxPercent = dec("20")

		b, err := resolver.Resolve(input)

		require.NoError(t, err)
		assert.True(t, b.Tax.Equal(dec("9")))
		assert.True(t, b.Total.Equal(dec("54")))
	})

	t.Run("should be deterministic for identical input", func(t *testing.T) {
		input := baseInput()
		input.Contract = activeContract("5")
		input.Campaigns = []pricing.Campaign{activeCampaign("A", "4", true)}
		input.Surcharges = []pricing.SurchargeRule{{Code: "FUEL", PercentOfBase: dec("8")}}
		input.TaxPercent = dec("19")

		first, err := resolver.Resolve(input)
		require.NoError(t, err)
		second, err := resolver.Resolve(input)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
