package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var (
	ErrReopenShipmentCommandIsNotConstructed = errors.New(
		"ReopenShipmentCommand must be created via NewReopenShipmentCommand constructor",
	)
	ErrReopenReasonIsRequired = errors.New("reopen reason is required")
)

// ReopenShipmentCommand reopens a terminal shipment into the given status.
// Reserved for support corrections: a delivery confirmed in error, a return
// closed against the wrong parcel. Requires elevated authorization; the
// resulting history entry carries the reopen trigger so corrections stay
// distinguishable from regular operations.
type ReopenShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	target     shipment.Status
	elevated   bool
	performer  string
	reason     string

	guard guard.ConstructorGuard
}

// NewReopenShipmentCommand creates a command reopening a terminal shipment.
// The elevated flag reflects the caller's authorization level; the handler
// refuses to reopen without it.
func NewReopenShipmentCommand(
	shipmentID kernel.UUID,
	target shipment.Status,
	elevated bool,
	performer, reason string,
) (ReopenShipmentCommand, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		target.Validate(),
	); err != nil {
		return ReopenShipmentCommand{}, err
	}
	if reason == "" {
		return ReopenShipmentCommand{}, ErrReopenReasonIsRequired
	}

	return ReopenShipmentCommand{
		shipmentID: shipmentID,
		target:     target,
		elevated:   elevated,
		performer:  performer,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReopenShipmentCommand) Validate() error {
	return c.guard.Validate(ErrReopenShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to reopen.
func (c ReopenShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Target returns the status the shipment reopens into.
func (c ReopenShipmentCommand) Target() shipment.Status {
	return c.target
}

// Elevated reports whether the caller holds elevated authorization.
func (c ReopenShipmentCommand) Elevated() bool {
	return c.elevated
}

// Performer returns who requested the reopen.
func (c ReopenShipmentCommand) Performer() string {
	return c.performer
}

// Reason returns the mandatory correction reason.
func (c ReopenShipmentCommand) Reason() string {
	return c.reason
}
