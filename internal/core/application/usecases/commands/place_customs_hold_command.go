package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrPlaceCustomsHoldCommandIsNotConstructed = errors.New(
		"PlaceCustomsHoldCommand must be created via NewPlaceCustomsHoldCommand constructor",
	)
	ErrHoldReasonIsRequired = errors.New("hold reason is required")
)

// PlaceCustomsHoldCommand represents a request to open a customs case on a
// shipment and route the shipment into the customs hold.
type PlaceCustomsHoldCommand struct { //nolint:recvcheck //using for validation
	caseID     kernel.UUID
	shipmentID kernel.UUID
	holdReason string
	performer  string

	guard guard.ConstructorGuard
}

// NewPlaceCustomsHoldCommand creates a command to place a shipment on customs hold.
// Validates the case and shipment identifiers and that a hold reason is given.
func NewPlaceCustomsHoldCommand(
	caseID, shipmentID kernel.UUID,
	holdReason, performer string,
) (PlaceCustomsHoldCommand, error) {
	cmd := PlaceCustomsHoldCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaseID(caseID),
		cmd.setShipmentID(shipmentID),
		cmd.setHoldReason(holdReason),
	); err != nil {
		return PlaceCustomsHoldCommand{}, err
	}

	cmd.performer = performer

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceCustomsHoldCommandIsNotConstructed if validation fails.
func (c PlaceCustomsHoldCommand) Validate() error {
	return c.guard.Validate(ErrPlaceCustomsHoldCommandIsNotConstructed)
}

// CaseID returns the identifier for the new customs case.
func (c PlaceCustomsHoldCommand) CaseID() kernel.UUID {
	return c.caseID
}

// ShipmentID returns the shipment to hold.
func (c PlaceCustomsHoldCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// HoldReason returns why the shipment is being held.
func (c PlaceCustomsHoldCommand) HoldReason() string {
	return c.holdReason
}

// Performer returns the officer placing the hold.
func (c PlaceCustomsHoldCommand) Performer() string {
	return c.performer
}

func (c *PlaceCustomsHoldCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}

	c.caseID = caseID
	return nil
}

func (c *PlaceCustomsHoldCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *PlaceCustomsHoldCommand) setHoldReason(holdReason string) error {
	if holdReason == "" {
		return ErrHoldReasonIsRequired
	}

	c.holdReason = holdReason
	return nil
}
