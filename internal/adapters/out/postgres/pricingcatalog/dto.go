// Package pricingcatalog provides read access to the rate, contract and
// campaign catalogs, plus the single write the pricing flow needs: reserving
// a campaign redemption.
package pricingcatalog

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// RateCardDTO represents the database structure for rate cards.
type RateCardDTO struct {
	ID              string `gorm:"primaryKey"`
	OriginZone      string `gorm:"index:idx_rate_cards_lane"`
	DestinationZone string `gorm:"index:idx_rate_cards_lane"`
	ServiceLevel    string
	MinWeightKg     decimal.Decimal
	MaxWeightKg     decimal.Decimal
	BaseAmount      decimal.Decimal
	PerKgAmount     decimal.Decimal
	EffectiveFrom   time.Time
	EffectiveTo     *time.Time
	Active          bool
	Priority        int
}

// TableName specifies the database table name for rate cards.
func (RateCardDTO) TableName() string {
	return "rate_cards"
}

func rateCardToDomain(dto RateCardDTO) pricing.RateCard {
	return pricing.RateCard{
		ID:              dto.ID,
		OriginZone:      dto.OriginZone,
		DestinationZone: dto.DestinationZone,
		ServiceLevel:    dto.ServiceLevel,
		MinWeightKg:     dto.MinWeightKg,
		MaxWeightKg:     dto.MaxWeightKg,
		BaseAmount:      dto.BaseAmount,
		PerKgAmount:     dto.PerKgAmount,
		EffectiveFrom:   dto.EffectiveFrom,
		EffectiveTo:     dto.EffectiveTo,
		Active:          dto.Active,
	}
}

// SurchargeRuleDTO represents the database structure for surcharge rules.
type SurchargeRuleDTO struct {
	Code           string `gorm:"primaryKey"`
	FlatAmount     decimal.Decimal
	PercentOfBase  decimal.Decimal
	RequiresOption string
}

// TableName specifies the database table name for surcharge rules.
func (SurchargeRuleDTO) TableName() string {
	return "surcharge_rules"
}

func surchargeRuleToDomain(dto SurchargeRuleDTO) pricing.SurchargeRule {
	return pricing.SurchargeRule{
		Code:           dto.Code,
		FlatAmount:     dto.FlatAmount,
		PercentOfBase:  dto.PercentOfBase,
		RequiresOption: dto.RequiresOption,
	}
}

// ContractDTO represents the database structure for customer contracts.
type ContractDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index"`
	Active           bool
	CumulativeVolume int64
	Tiers            []ContractTierDTO `gorm:"foreignKey:ContractID"`
}

// TableName specifies the database table name for contracts.
func (ContractDTO) TableName() string {
	return "contracts"
}

// ContractTierDTO represents one volume tier row of a contract.
type ContractTierDTO struct {
	ContractID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"primaryKey"`
	VolumeRequirement int64
	DiscountPercent   decimal.Decimal
}

// TableName specifies the database table name for contract tiers.
func (ContractTierDTO) TableName() string {
	return "contract_tiers"
}

func contractToDomain(dto ContractDTO) (pricing.Contract, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.Contract{}, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return pricing.Contract{}, err
	}

	tiers := make([]pricing.VolumeTier, 0, len(dto.Tiers))
	for _, tier := range dto.Tiers {
		tiers = append(tiers, pricing.VolumeTier{
			Name:              tier.Name,
			VolumeRequirement: tier.VolumeRequirement,
			DiscountPercent:   tier.DiscountPercent,
		})
	}

	return pricing.Contract{
		ID:               id,
		CustomerID:       customerID,
		Active:           dto.Active,
		CumulativeVolume: dto.CumulativeVolume,
		Tiers:            tiers,
	}, nil
}

// CampaignDTO represents the database structure for promotional campaigns.
type CampaignDTO struct {
	Code                  string `gorm:"primaryKey"`
	Active                bool
	PercentOff            decimal.Decimal
	FlatOff               decimal.Decimal
	EffectiveFrom         time.Time
	EffectiveTo           time.Time
	EligibleCustomerTypes pq.StringArray `gorm:"type:text[]"`
	UsageCount            int64
	UsageLimit            int64
	StackingAllowed       bool
	DiscountCapPercent    decimal.NullDecimal
	MaximumDiscountAmount decimal.NullDecimal
}

// TableName specifies the database table name for campaigns.
func (CampaignDTO) TableName() string {
	return "campaigns"
}

func campaignToDomain(dto CampaignDTO) pricing.Campaign {
	campaign := pricing.Campaign{
		Code:                  dto.Code,
		Active:                dto.Active,
		PercentOff:            dto.PercentOff,
		FlatOff:               dto.FlatOff,
		EffectiveFrom:         dto.EffectiveFrom,
		EffectiveTo:           dto.EffectiveTo,
		EligibleCustomerTypes: []string(dto.EligibleCustomerTypes),
		UsageCount:            dto.UsageCount,
		UsageLimit:            dto.UsageLimit,
		StackingAllowed:       dto.StackingAllowed,
	}

	if dto.DiscountCapPercent.Valid {
		cap := dto.DiscountCapPercent.Decimal
		campaign.DiscountCapPercent = &cap
	}
	if dto.MaximumDiscountAmount.Valid {
		maxAmount := dto.MaximumDiscountAmount.Decimal
		campaign.MaximumDiscountAmount = &maxAmount
	}

	return campaign
}
