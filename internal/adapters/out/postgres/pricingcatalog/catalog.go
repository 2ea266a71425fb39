package pricingcatalog

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPricingCatalog implements the RateCardCatalog, ContractCatalog and
// CampaignCatalog ports on one GORM connection. Catalog data is maintained by
// back-office tooling; this adapter only reads it, except for campaign usage
// reservation.
type GormPricingCatalog struct {
	db *gorm.DB
}

// NewGormPricingCatalog creates a catalog adapter on the given connection.
func NewGormPricingCatalog(db *gorm.DB) *GormPricingCatalog {
	return &GormPricingCatalog{db: db}
}

// GetActiveRateCards retrieves active cards for the lane in priority order.
func (c *GormPricingCatalog) GetActiveRateCards(
	ctx context.Context, originZone, destinationZone string,
) ([]pricing.RateCard, error) {
	var dtos []RateCardDTO
	if err := c.db.WithContext(ctx).
		Where("origin_zone = ? AND destination_zone = ? AND active", originZone, destinationZone).
		Order("priority, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	cards := make([]pricing.RateCard, 0, len(dtos))
	for _, dto := range dtos {
		cards = append(cards, rateCardToDomain(dto))
	}

	return cards, nil
}

// GetSurchargeRules retrieves the full surcharge rule set.
func (c *GormPricingCatalog) GetSurchargeRules(ctx context.Context) ([]pricing.SurchargeRule, error) {
	var dtos []SurchargeRuleDTO
	if err := c.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	rules := make([]pricing.SurchargeRule, 0, len(dtos))
	for _, dto := range dtos {
		rules = append(rules, surchargeRuleToDomain(dto))
	}

	return rules, nil
}

// GetActiveContract retrieves the customer's active contract with its tiers.
// Returns nil without error when the customer has none.
func (c *GormPricingCatalog) GetActiveContract(
	ctx context.Context, customerID kernel.UUID,
) (*pricing.Contract, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto ContractDTO
	err := c.db.WithContext(ctx).
		Preload("Tiers").
		Where("customer_id = ? AND active", customerID.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	contract, err := contractToDomain(dto)
	if err != nil {
		return nil, err
	}

	return &contract, nil
}

// GetByCode retrieves a campaign by its promotion code.
// Returns nil without error when the code is unknown; the caller decides
// whether that is a rejection.
func (c *GormPricingCatalog) GetByCode(ctx context.Context, code string) (*pricing.Campaign, error) {
	var dto CampaignDTO
	err := c.db.WithContext(ctx).First(&dto, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	campaign := campaignToDomain(dto)
	return &campaign, nil
}

// ReserveUsage claims one redemption of the campaign with a conditional
// increment bounded by the usage limit, so concurrent bookings cannot
// oversubscribe a limited campaign.
func (c *GormPricingCatalog) ReserveUsage(ctx context.Context, code string) error {
	result := c.db.WithContext(ctx).Exec(`
		UPDATE campaigns
		SET usage_count = usage_count + 1
		WHERE code = ?
		  AND (usage_limit = 0 OR usage_count < usage_limit)
	`, code)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := c.db.WithContext(ctx).
			Model(&CampaignDTO{}).
			Where("code = ?", code).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("campaign", code)
		}
		return pricing.NewInvalidPromotionCodeError(code, pricing.PromoReasonUsageExhausted)
	}

	return nil
}
