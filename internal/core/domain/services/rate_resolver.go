package services

import (
	"time"

	"logistics/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// ServiceOptions are the per-shipment options affecting surcharges and
// insurance.
type ServiceOptions struct {
	HazmatDeclared bool
	RemoteArea     bool

	// InsuredValue is the declared value to insure; zero means no insurance.
	InsuredValue decimal.Decimal
}

// RateInput carries everything the resolver needs: the shipment's physical
// and service attributes, the customer's commercial context, and the catalog
// data read for this quote. Nothing is fetched lazily; the resolver is a pure
// function of this input.
type RateInput struct {
	OriginZone      string
	DestinationZone string
	ServiceLevel    string
	WeightKg        decimal.Decimal
	CustomerType    string
	Options         ServiceOptions

	// RateCards are the candidate cards for the route; the first match in
	// the given order wins.
	RateCards []pricing.RateCard

	// Surcharges are the rules applicable to the service level.
	Surcharges []pricing.SurchargeRule

	// Contract is the customer's active contract, or nil.
	Contract *pricing.Contract

	// Campaigns are the campaigns resolved for the supplied promotion codes,
	// in the order the codes were supplied.
	Campaigns []pricing.Campaign

	// InsurancePercent is the insurance premium as a percentage of the
	// insured value.
	InsurancePercent decimal.Decimal

	// TaxPercent is applied to the discounted subtotal.
	TaxPercent decimal.Decimal

	// Now is the quote instant used for effective-window checks. The caller
	// supplies it so repeated resolution of the same input is reproducible.
	Now time.Time
}

// RateResolver computes a shipment's price by composing base rate lookup,
// weight charge, surcharges, contract volume discounts, promotional
// campaigns with stacking rules and caps, and tax.
//
// Calling Resolve twice with identical inputs and unchanged catalog data
// yields identical breakdowns. Promotion usage counting is not done here:
// quote finalization reserves usage through the campaign catalog port.
type RateResolver struct{}

// NewRateResolver creates a rate resolver. The resolver is stateless; a new
// instance per quote is idiomatic and free.
func NewRateResolver() RateResolver {
	return RateResolver{}
}

// moneyScale is the rounding scale for money amounts on the breakdown.
const moneyScale = 2

// Resolve computes the pricing breakdown for the given input.
//
// Pipeline: base-rate lookup -> weight charge -> surcharges -> insurance ->
// contract volume-tier discount -> promotional discounts (stacking rules and
// caps) -> tax -> total.
//
// Failure modes:
//   - *pricing.NoApplicableRateCardError when no card matches the
//     route/service/weight combination: fatal for the quote;
//   - *pricing.InvalidPromotionCodeError when a supplied campaign is
//     inactive, expired, ineligible, exhausted, or combined against its
//     stacking flag: the caller decides whether to re-quote without it.
func (RateResolver) Resolve(input RateInput) (pricing.Breakdown, error) {
	card, ok := findRateCard(input)
	if !ok {
		return pricing.Breakdown{}, pricing.NewNoApplicableRateCardError(
			input.OriginZone, input.DestinationZone, input.ServiceLevel)
	}

	base := card.BaseAmount.Round(moneyScale)
	weightCharge := card.PerKgAmount.Mul(input.WeightKg).Round(moneyScale)
	freight := base.Add(weightCharge)

	var surchargeLines []pricing.SurchargeLine
	for _, rule := range input.Surcharges {
		if !rule.AppliesTo(input.Options.HazmatDeclared, input.Options.RemoteArea) {
			continue
		}
		amount := rule.AmountFor(freight).Round(moneyScale)
		if amount.IsZero() {
			continue
		}
		surchargeLines = append(surchargeLines, pricing.SurchargeLine{Code: rule.Code, Amount: amount})
	}

	insurance := decimal.Zero
	if input.Options.InsuredValue.IsPositive() && input.InsurancePercent.IsPositive() {
		insurance = input.Options.InsuredValue.
			Mul(input.InsurancePercent).
			Div(decimal.NewFromInt(100)).
			Round(moneyScale)
	}

	subtotal := freight.Add(insurance)
	for _, line := range surchargeLines {
		subtotal = subtotal.Add(line.Amount)
	}

	contractDiscount := decimal.Zero
	if input.Contract != nil {
		if tier, found := input.Contract.BestTier(); found {
			contractDiscount = subtotal.
				Mul(tier.DiscountPercent).
				Div(decimal.NewFromInt(100)).
				Round(moneyScale)
		}
	}

	contractDiscount, promoLines, err := applyCampaigns(input, subtotal, contractDiscount)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	discountTotal := contractDiscount
	for _, line := range promoLines {
		discountTotal = discountTotal.Add(line.Amount)
	}
	if discountTotal.GreaterThan(subtotal) {
		// A quote never goes negative. Promo lines absorb the excess first,
		// last-supplied code first, each only down to zero; whatever remains
		// comes off the contract discount.
		excess := discountTotal.Sub(subtotal)
		for i := len(promoLines) - 1; i >= 0 && excess.IsPositive(); i-- {
			reduction := decimal.Min(promoLines[i].Amount, excess)
			promoLines[i].Amount = promoLines[i].Amount.Sub(reduction)
			excess = excess.Sub(reduction)
		}
		if excess.IsPositive() {
			contractDiscount = contractDiscount.Sub(excess)
		}
		discountTotal = subtotal
	}

	taxable := subtotal.Sub(discountTotal)
	tax := taxable.Mul(input.TaxPercent).Div(decimal.NewFromInt(100)).Round(moneyScale)
	total := taxable.Add(tax)

	return pricing.Breakdown{
		Currency:         "USD",
		Base:             base,
		WeightCharge:     weightCharge,
		Surcharges:       surchargeLines,
		Insurance:        insurance,
		Subtotal:         subtotal,
		ContractDiscount: contractDiscount,
		PromoDiscounts:   promoLines,
		Tax:              tax,
		Total:            total,
	}, nil
}

func findRateCard(input RateInput) (pricing.RateCard, bool) {
	for _, card := range input.RateCards {
		if card.Matches(input.OriginZone, input.DestinationZone, input.ServiceLevel, input.WeightKg, input.Now) {
			return card, true
		}
	}
	return pricing.RateCard{}, false
}

// applyCampaigns resolves the promotional discounts and decides how they
// combine with the contract discount.
//
// Stacking policy: a non-stacking campaign can only be used alone, and when
// used it competes with the contract discount: the larger of the two applies,
// never both. Stacking-allowed campaigns combine with the contract discount
// and with each other, applied in the supplied order, each capped
// independently, with the combined promotional total then capped at the
// strictest cap any of them declares.
func applyCampaigns(
	input RateInput,
	subtotal, contractDiscount decimal.Decimal,
) (decimal.Decimal, []pricing.DiscountLine, error) {
	if len(input.Campaigns) == 0 {
		return contractDiscount, nil, nil
	}

	for _, campaign := range input.Campaigns {
		if err := campaign.EligibilityError(input.CustomerType, input.Now); err != nil {
			return decimal.Zero, nil, err
		}
		if !campaign.StackingAllowed && len(input.Campaigns) > 1 {
			return decimal.Zero, nil, pricing.NewInvalidPromotionCodeError(
				campaign.Code, pricing.PromoReasonNotStackable)
		}
	}

	if len(input.Campaigns) == 1 && !input.Campaigns[0].StackingAllowed {
		campaign := input.Campaigns[0]
		promo := campaign.DiscountFor(subtotal).Round(moneyScale)
		if promo.GreaterThan(contractDiscount) {
			return decimal.Zero, []pricing.DiscountLine{{Code: campaign.Code, Amount: promo}}, nil
		}
		return contractDiscount, nil, nil
	}

	var lines []pricing.DiscountLine
	promoTotal := decimal.Zero
	for _, campaign := range input.Campaigns {
		amount := campaign.DiscountFor(subtotal).Round(moneyScale)
		lines = append(lines, pricing.DiscountLine{Code: campaign.Code, Amount: amount})
		promoTotal = promoTotal.Add(amount)
	}

	// Combined total honors the strictest cap declared by any stacked campaign.
	strictest := promoTotal
	for _, campaign := range input.Campaigns {
		capped := campaign.CapAmount(promoTotal, subtotal)
		if capped.LessThan(strictest) {
			strictest = capped
		}
	}
	if strictest.LessThan(promoTotal) {
		excess := promoTotal.Sub(strictest)
		for i := len(lines) - 1; i >= 0 && excess.IsPositive(); i-- {
			reduction := decimal.Min(lines[i].Amount, excess)
			lines[i].Amount = lines[i].Amount.Sub(reduction)
			excess = excess.Sub(reduction)
		}
	}

	return contractDiscount, lines, nil
}
