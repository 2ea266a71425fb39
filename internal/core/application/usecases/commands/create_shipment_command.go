package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrOriginZoneIsRequired      = errors.New("origin zone is required")
	ErrDestinationZoneIsRequired = errors.New("destination zone is required")
	ErrServiceLevelIsRequired    = errors.New("service level is required")
	ErrWeightIsInvalid           = errors.New("weight must be greater than 0")
)

// CreateShipmentCommand represents a request to book a new shipment.
// Carries the physical attributes, the lane, the commercial context and any
// promotion codes supplied at booking time.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, trackingNumber,
//	    originBranch, destinationBranch, customerID,
//	    "ZONE-EU", "ZONE-US", "EXPRESS", "business",
//	    decimal.NewFromFloat(2.5), services.ServiceOptions{}, []string{"SUMMER10"})
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, rateCards, contracts, campaigns, pricingCfg)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to book shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID          kernel.UUID
	trackingNumber      shipment.TrackingNumber
	originBranchID      kernel.UUID
	destinationBranchID kernel.UUID
	customerID          kernel.UUID
	originZone          string
	destinationZone     string
	serviceLevel        string
	customerType        string
	weightKg            decimal.Decimal
	options             services.ServiceOptions
	promotionCodes      []string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to book a new shipment.
// Validates identifiers, the tracking number, the lane attributes and the
// declared weight. Returns an error if any validation fails.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	trackingNumber shipment.TrackingNumber,
	originBranchID, destinationBranchID, customerID kernel.UUID,
	originZone, destinationZone, serviceLevel, customerType string,
	weightKg decimal.Decimal,
	options services.ServiceOptions,
	promotionCodes []string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTrackingNumber(trackingNumber),
		cmd.setBranches(originBranchID, destinationBranchID),
		cmd.setCustomerID(customerID),
		cmd.setZones(originZone, destinationZone),
		cmd.setServiceLevel(serviceLevel),
		cmd.setWeight(weightKg),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.customerType = customerType
	cmd.options = options
	cmd.promotionCodes = append([]string(nil), promotionCodes...)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// TrackingNumber returns the public tracking number assigned at booking.
func (c CreateShipmentCommand) TrackingNumber() shipment.TrackingNumber {
	return c.trackingNumber
}

// OriginBranchID returns the branch the shipment originates from.
func (c CreateShipmentCommand) OriginBranchID() kernel.UUID {
	return c.originBranchID
}

// DestinationBranchID returns the branch the shipment is routed to.
func (c CreateShipmentCommand) DestinationBranchID() kernel.UUID {
	return c.destinationBranchID
}

// CustomerID returns the booking customer.
func (c CreateShipmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OriginZone returns the pricing zone of the origin.
func (c CreateShipmentCommand) OriginZone() string {
	return c.originZone
}

// DestinationZone returns the pricing zone of the destination.
func (c CreateShipmentCommand) DestinationZone() string {
	return c.destinationZone
}

// ServiceLevel returns the requested service level.
func (c CreateShipmentCommand) ServiceLevel() string {
	return c.serviceLevel
}

// CustomerType returns the customer segment used for campaign eligibility.
func (c CreateShipmentCommand) CustomerType() string {
	return c.customerType
}

// WeightKg returns the declared weight.
func (c CreateShipmentCommand) WeightKg() decimal.Decimal {
	return c.weightKg
}

// Options returns the requested service options.
func (c CreateShipmentCommand) Options() services.ServiceOptions {
	return c.options
}

// PromotionCodes returns the promotion codes supplied at booking, in order.
func (c CreateShipmentCommand) PromotionCodes() []string {
	return append([]string(nil), c.promotionCodes...)
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setTrackingNumber(trackingNumber shipment.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *CreateShipmentCommand) setBranches(origin, destination kernel.UUID) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}

	c.originBranchID = origin
	c.destinationBranchID = destination
	return nil
}

func (c *CreateShipmentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateShipmentCommand) setZones(origin, destination string) error {
	if origin == "" {
		return ErrOriginZoneIsRequired
	}
	if destination == "" {
		return ErrDestinationZoneIsRequired
	}

	c.originZone = origin
	c.destinationZone = destination
	return nil
}

func (c *CreateShipmentCommand) setServiceLevel(serviceLevel string) error {
	if serviceLevel == "" {
		return ErrServiceLevelIsRequired
	}

	c.serviceLevel = serviceLevel
	return nil
}

func (c *CreateShipmentCommand) setWeight(weightKg decimal.Decimal) error {
	if !weightKg.IsPositive() {
		return ErrWeightIsInvalid
	}

	c.weightKg = weightKg
	return nil
}
