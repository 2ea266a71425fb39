package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion rejection reasons carried by InvalidPromotionCodeError.
const (
	PromoReasonUnknownCode    = "unknown code"
	PromoReasonInactive       = "campaign inactive"
	PromoReasonExpired        = "outside effective window"
	PromoReasonIneligible     = "customer type not eligible"
	PromoReasonUsageExhausted = "usage limit reached"
	PromoReasonNotStackable   = "campaign cannot be combined with other promotions"
)

// Campaign is a promotional discount campaign supplied read-only by an
// external catalog. A campaign discounts a quote by PercentOff of the
// subtotal plus FlatOff, subject to the caps.
type Campaign struct {
	Code                  string
	Active                bool
	PercentOff            decimal.Decimal
	FlatOff               decimal.Decimal
	EffectiveFrom         time.Time
	EffectiveTo           time.Time
	EligibleCustomerTypes []string
	UsageCount            int64
	UsageLimit            int64 // 0 = unlimited
	StackingAllowed       bool
	DiscountCapPercent    *decimal.Decimal
	MaximumDiscountAmount *decimal.Decimal
}

// EligibilityError checks whether the campaign can be applied for the given
// customer type at the given instant. Returns nil when eligible, otherwise an
// *InvalidPromotionCodeError naming the first failed condition.
//
// Validity = active flag AND within the effective window AND customer's type
// in the eligibility set AND usage count below the usage limit.
func (c Campaign) EligibilityError(customerType string, at time.Time) error {
	if !c.Active {
		return NewInvalidPromotionCodeError(c.Code, PromoReasonInactive)
	}
	if at.Before(c.EffectiveFrom) || at.After(c.EffectiveTo) {
		return NewInvalidPromotionCodeError(c.Code, PromoReasonExpired)
	}
	if len(c.EligibleCustomerTypes) > 0 {
		eligible := false
		for _, t := range c.EligibleCustomerTypes {
			if t == customerType {
				eligible = true
				break
			}
		}
		if !eligible {
			return NewInvalidPromotionCodeError(c.Code, PromoReasonIneligible)
		}
	}
	if c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit {
		return NewInvalidPromotionCodeError(c.Code, PromoReasonUsageExhausted)
	}
	return nil
}

// DiscountFor computes the campaign's discount on the given subtotal,
// applying the campaign's own caps independently of any other discount:
// the result never exceeds DiscountCapPercent of the subtotal nor
// MaximumDiscountAmount, where present.
func (c Campaign) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	discount := c.FlatOff
	if !c.PercentOff.IsZero() {
		discount = discount.Add(subtotal.Mul(c.PercentOff).Div(decimal.NewFromInt(100)))
	}
	return c.CapAmount(discount, subtotal)
}

// CapAmount clamps a discount amount to the campaign's caps.
func (c Campaign) CapAmount(discount, subtotal decimal.Decimal) decimal.Decimal {
	if c.DiscountCapPercent != nil {
		cap := subtotal.Mul(*c.DiscountCapPercent).Div(decimal.NewFromInt(100))
		if discount.GreaterThan(cap) {
			discount = cap
		}
	}
	if c.MaximumDiscountAmount != nil && discount.GreaterThan(*c.MaximumDiscountAmount) {
		discount = *c.MaximumDiscountAmount
	}
	return discount
}
