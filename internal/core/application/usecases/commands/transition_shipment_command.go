package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrTransitionShipmentCommandIsNotConstructed = errors.New(
	"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
)

// TransitionShipmentCommand applies a manual status change from the back
// office. With the override flag set, an edge outside the transition table is
// still applied and the history entry is flagged as overridden.
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	target     shipment.Status
	override   bool
	performer  string
	note       string

	guard guard.ConstructorGuard
}

// NewTransitionShipmentCommand creates a command for a manual status change.
func NewTransitionShipmentCommand(
	shipmentID kernel.UUID,
	target shipment.Status,
	override bool,
	performer, note string,
) (TransitionShipmentCommand, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		target.Validate(),
	); err != nil {
		return TransitionShipmentCommand{}, err
	}

	return TransitionShipmentCommand{
		shipmentID: shipmentID,
		target:     target,
		override:   override,
		performer:  performer,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to transition.
func (c TransitionShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Target returns the requested status.
func (c TransitionShipmentCommand) Target() shipment.Status {
	return c.target
}

// Override reports whether out-of-table edges are allowed.
func (c TransitionShipmentCommand) Override() bool {
	return c.override
}

// Performer returns the operator requesting the change.
func (c TransitionShipmentCommand) Performer() string {
	return c.performer
}

// Note returns the operator's note.
func (c TransitionShipmentCommand) Note() string {
	return c.note
}
