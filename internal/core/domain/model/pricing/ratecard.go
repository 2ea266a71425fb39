package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateCard defines the base price for a zone pair, service level and weight
// bracket, valid within an effective window. Rate cards are maintained by an
// external catalog and consulted read-only.
type RateCard struct {
	ID              string
	OriginZone      string
	DestinationZone string
	ServiceLevel    string
	MinWeightKg     decimal.Decimal
	MaxWeightKg     decimal.Decimal
	BaseAmount      decimal.Decimal
	PerKgAmount     decimal.Decimal
	EffectiveFrom   time.Time
	EffectiveTo     *time.Time // nil = open-ended
	Active          bool
}

// Matches reports whether the card prices the given route, service level and
// weight at the given instant. Weight brackets are inclusive of MinWeightKg
// and exclusive of MaxWeightKg; a zero MaxWeightKg means unbounded.
func (r RateCard) Matches(originZone, destinationZone, serviceLevel string, weightKg decimal.Decimal, at time.Time) bool {
	if !r.Active {
		return false
	}
	if r.OriginZone != originZone || r.DestinationZone != destinationZone || r.ServiceLevel != serviceLevel {
		return false
	}
	if at.Before(r.EffectiveFrom) {
		return false
	}
	if r.EffectiveTo != nil && at.After(*r.EffectiveTo) {
		return false
	}
	if weightKg.LessThan(r.MinWeightKg) {
		return false
	}
	if !r.MaxWeightKg.IsZero() && weightKg.GreaterThanOrEqual(r.MaxWeightKg) {
		return false
	}
	return true
}

// Surcharge option codes understood by SurchargeRule.AppliesTo.
const (
	// SurchargeAlways marks rules applied to every quote (e.g. fuel).
	SurchargeAlways = ""

	// SurchargeOptionHazmat marks rules applied when hazmat is declared.
	SurchargeOptionHazmat = "hazmat"

	// SurchargeOptionRemoteArea marks rules applied for remote-area delivery.
	SurchargeOptionRemoteArea = "remote_area"
)

// SurchargeRule adds a flat amount and/or a percentage of the freight charge
// (base + weight charge) to the quote. RequiresOption selects which service
// option activates the rule; SurchargeAlways rules apply unconditionally.
type SurchargeRule struct {
	Code           string
	FlatAmount     decimal.Decimal
	PercentOfBase  decimal.Decimal // e.g. 8.5 = 8.5% of base+weight charge
	RequiresOption string
}

// AppliesTo reports whether this rule is activated by the given options.
func (s SurchargeRule) AppliesTo(hazmatDeclared, remoteArea bool) bool {
	switch s.RequiresOption {
	case SurchargeAlways:
		return true
	case SurchargeOptionHazmat:
		return hazmatDeclared
	case SurchargeOptionRemoteArea:
		return remoteArea
	default:
		return false
	}
}

// AmountFor computes the surcharge amount for the given freight charge.
func (s SurchargeRule) AmountFor(freightCharge decimal.Decimal) decimal.Decimal {
	amount := s.FlatAmount
	if !s.PercentOfBase.IsZero() {
		amount = amount.Add(freightCharge.Mul(s.PercentOfBase).Div(decimal.NewFromInt(100)))
	}
	return amount
}
