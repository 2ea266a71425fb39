package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand cancels a booking. Cancellation is only legal while
// the shipment has not been picked up; after pickup the return flow applies.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	performer  string
	reason     string

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command cancelling a shipment.
func NewCancelShipmentCommand(shipmentID kernel.UUID, performer, reason string) (CancelShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return CancelShipmentCommand{}, err
	}

	return CancelShipmentCommand{
		shipmentID: shipmentID,
		performer:  performer,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to cancel.
func (c CancelShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Performer returns who requested the cancellation.
func (c CancelShipmentCommand) Performer() string {
	return c.performer
}

// Reason returns the cancellation reason.
func (c CancelShipmentCommand) Reason() string {
	return c.reason
}
