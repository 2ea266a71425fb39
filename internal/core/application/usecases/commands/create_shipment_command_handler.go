package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"github.com/shopspring/decimal"
)

// PricingConfig carries the tariff-wide percentages that are configuration
// rather than catalog data.
type PricingConfig struct {
	InsurancePercent decimal.Decimal
	TaxPercent       decimal.Decimal
}

// CreateShipmentCommandHandler handles the business logic for shipment booking.
// Resolves the price from the rate catalogs, attaches the breakdown to the new
// shipment and persists both in one transaction.
type CreateShipmentCommandHandler struct {
	uowFactory    BookingUoWFactory
	rateCards     ports.RateCardCatalog
	contracts     ports.ContractCatalog
	campaigns     ports.CampaignCatalog
	pricingConfig PricingConfig
	resolver      services.RateResolver
}

// NewCreateShipmentCommandHandler creates a handler for shipment booking.
// Requires a BookingUoWFactory for transactional persistence and the pricing
// catalogs for quote resolution.
func NewCreateShipmentCommandHandler(
	uowFactory BookingUoWFactory,
	rateCards ports.RateCardCatalog,
	contracts ports.ContractCatalog,
	campaigns ports.CampaignCatalog,
	pricingConfig PricingConfig,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:    uowFactory,
		rateCards:     rateCards,
		contracts:     contracts,
		campaigns:     campaigns,
		pricingConfig: pricingConfig,
		resolver:      services.NewRateResolver(),
	}
}

// Handle processes the booking command.
// Resolves the rate first: a quote failure (no matching card, invalid promo)
// rejects the booking before anything is written. The shipment and the usage
// reservations for its promotion codes are committed in one transaction, so a
// failed booking never burns a redemption.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	breakdown, err := h.resolveRate(ctx, cmd)
	if err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.TrackingNumber(),
		cmd.OriginBranchID(),
		cmd.DestinationBranchID(),
		cmd.CustomerID(),
		cmd.WeightKg(),
	)
	if err != nil {
		return err
	}
	aggregate.AttachPricing(breakdown)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	for _, code := range cmd.PromotionCodes() {
		if err = uow.CampaignReservations().ReserveUsage(ctx, code); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *CreateShipmentCommandHandler) resolveRate(
	ctx context.Context, cmd CreateShipmentCommand,
) (pricing.Breakdown, error) {
	cards, err := h.rateCards.GetActiveRateCards(ctx, cmd.OriginZone(), cmd.DestinationZone())
	if err != nil {
		return pricing.Breakdown{}, err
	}

	surcharges, err := h.rateCards.GetSurchargeRules(ctx)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	contract, err := h.contracts.GetActiveContract(ctx, cmd.CustomerID())
	if err != nil {
		return pricing.Breakdown{}, err
	}

	resolved := make([]pricing.Campaign, 0, len(cmd.PromotionCodes()))
	for _, code := range cmd.PromotionCodes() {
		campaign, err := h.campaigns.GetByCode(ctx, code)
		if err != nil {
			return pricing.Breakdown{}, err
		}
		if campaign == nil {
			return pricing.Breakdown{}, pricing.NewInvalidPromotionCodeError(code, pricing.PromoReasonUnknownCode)
		}
		resolved = append(resolved, *campaign)
	}

	return h.resolver.Resolve(services.RateInput{
		OriginZone:       cmd.OriginZone(),
		DestinationZone:  cmd.DestinationZone(),
		ServiceLevel:     cmd.ServiceLevel(),
		WeightKg:         cmd.WeightKg(),
		CustomerType:     cmd.CustomerType(),
		Options:          cmd.Options(),
		RateCards:        cards,
		Surcharges:       surcharges,
		Contract:         contract,
		Campaigns:        resolved,
		InsurancePercent: h.pricingConfig.InsurancePercent,
		TaxPercent:       h.pricingConfig.TaxPercent,
		Now:              time.Now().UTC(),
	})
}
