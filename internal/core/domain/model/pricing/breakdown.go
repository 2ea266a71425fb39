// Package pricing holds the commercial read models consulted during rate
// resolution (rate cards, surcharge rules, contracts, promotional campaigns)
// and the Breakdown value computed from them.
//
// Configuration entities are supplied read-only by an external catalog; they
// are plain exported-field structs, not guarded aggregates. All monetary
// amounts use shopspring/decimal so identical inputs always produce identical
// quotes.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidPromotionCode is the sentinel error for promotion codes that
	// are unknown, expired, usage-exhausted, or not eligible for the customer.
	ErrInvalidPromotionCode = errors.New("invalid promotion code")

	// ErrNoApplicableRateCard is the sentinel error for route/service
	// combinations with no matching base rate. Fatal for the quote.
	ErrNoApplicableRateCard = errors.New("no applicable rate card")
)

// InvalidPromotionCodeError reports why a promotion code was rejected.
// The caller decides whether to re-quote without the promotion or abort.
type InvalidPromotionCodeError struct {
	Code   string
	Reason string
}

func NewInvalidPromotionCodeError(code, reason string) *InvalidPromotionCodeError {
	return &InvalidPromotionCodeError{Code: code, Reason: reason}
}

func (e *InvalidPromotionCodeError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrInvalidPromotionCode, e.Code, e.Reason)
}

func (e *InvalidPromotionCodeError) Unwrap() error {
	return ErrInvalidPromotionCode
}

// NoApplicableRateCardError reports the route/service combination that
// matched no rate card.
type NoApplicableRateCardError struct {
	OriginZone      string
	DestinationZone string
	ServiceLevel    string
}

func NewNoApplicableRateCardError(originZone, destinationZone, serviceLevel string) *NoApplicableRateCardError {
	return &NoApplicableRateCardError{
		OriginZone:      originZone,
		DestinationZone: destinationZone,
		ServiceLevel:    serviceLevel,
	}
}

func (e *NoApplicableRateCardError) Error() string {
	return fmt.Sprintf("%s: %s -> %s (%s)",
		ErrNoApplicableRateCard, e.OriginZone, e.DestinationZone, e.ServiceLevel)
}

func (e *NoApplicableRateCardError) Unwrap() error {
	return ErrNoApplicableRateCard
}

// SurchargeLine is one itemized surcharge on a breakdown.
type SurchargeLine struct {
	Code   string          `json:"code"`
	Amount decimal.Decimal `json:"amount"`
}

// DiscountLine is one applied promotional discount on a breakdown.
type DiscountLine struct {
	Code   string          `json:"code"`
	Amount decimal.Decimal `json:"amount"`
}

// Breakdown is the fully itemized price of a shipment quote. It is an
// ephemeral computed value: produced fresh by the rate resolver and attached
// to a shipment's pricing snapshot at booking time. It is never mutated.
//
// Total = Subtotal - ContractDiscount - sum(PromoDiscounts) + Tax, where
// Subtotal = Base + WeightCharge + sum(Surcharges) + Insurance.
type Breakdown struct {
	Currency         string          `json:"currency"`
	Base             decimal.Decimal `json:"base"`
	WeightCharge     decimal.Decimal `json:"weight_charge"`
	Surcharges       []SurchargeLine `json:"surcharges,omitempty"`
	Insurance        decimal.Decimal `json:"insurance"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	ContractDiscount decimal.Decimal `json:"contract_discount"`
	PromoDiscounts   []DiscountLine  `json:"promo_discounts,omitempty"`
	Tax              decimal.Decimal `json:"tax"`
	Total            decimal.Decimal `json:"total"`
}

// DiscountTotal returns the combined contract and promotional discount.
func (b Breakdown) DiscountTotal() decimal.Decimal {
	total := b.ContractDiscount
	for _, line := range b.PromoDiscounts {
		total = total.Add(line.Amount)
	}
	return total
}

// SurchargeTotal returns the combined surcharge amount.
func (b Breakdown) SurchargeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range b.Surcharges {
		total = total.Add(line.Amount)
	}
	return total
}
