package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var (
	ErrProcessScanCommandIsNotConstructed = errors.New(
		"ProcessScanCommand must be created via NewProcessScanCommand constructor",
	)
	ErrRawScanTypeIsRequired = errors.New("raw scan type is required")
)

// ProcessScanCommand represents one tracking scan received from a courier
// device or partner feed. The scan type arrives as the raw wire string and is
// normalized during handling, so feeds emitting legacy event names keep
// working.
//
// Example:
//
//	cmd, err := NewProcessScanCommand(kernel.NewUUID(), trackingNumber,
//	    "ARRIVE", "hub-operator-7", "", time.Now())
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("shipment moved from %s to %s", result.PriorStatus, result.NewStatus)
type ProcessScanCommand struct { //nolint:recvcheck //using for validation
	scanEventID    kernel.UUID
	trackingNumber shipment.TrackingNumber
	rawScanType    string
	performer      string
	note           string
	occurredAt     time.Time

	guard guard.ConstructorGuard
}

// NewProcessScanCommand creates a command to apply a single scan event.
// Validates the event identifier, the tracking number and that a raw scan
// type string is present. An unrecognized scan type is NOT a constructor
// error; normalization happens in the handler so the event can still be
// recorded as informational.
func NewProcessScanCommand(
	scanEventID kernel.UUID,
	trackingNumber shipment.TrackingNumber,
	rawScanType, performer, note string,
	occurredAt time.Time,
) (ProcessScanCommand, error) {
	cmd := ProcessScanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setScanEventID(scanEventID),
		cmd.setTrackingNumber(trackingNumber),
		cmd.setRawScanType(rawScanType),
	); err != nil {
		return ProcessScanCommand{}, err
	}

	cmd.performer = performer
	cmd.note = note
	cmd.occurredAt = occurredAt

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessScanCommandIsNotConstructed if validation fails.
func (c ProcessScanCommand) Validate() error {
	return c.guard.Validate(ErrProcessScanCommandIsNotConstructed)
}

// ScanEventID returns the unique identifier of the scan event.
func (c ProcessScanCommand) ScanEventID() kernel.UUID {
	return c.scanEventID
}

// TrackingNumber returns the tracking number the scan targets.
func (c ProcessScanCommand) TrackingNumber() shipment.TrackingNumber {
	return c.trackingNumber
}

// RawScanType returns the scan type exactly as received on the wire.
func (c ProcessScanCommand) RawScanType() string {
	return c.rawScanType
}

// Performer returns the operator or device that produced the scan.
func (c ProcessScanCommand) Performer() string {
	return c.performer
}

// Note returns the free-text note attached to the scan.
func (c ProcessScanCommand) Note() string {
	return c.note
}

// OccurredAt returns the scan timestamp reported by the device.
func (c ProcessScanCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *ProcessScanCommand) setScanEventID(scanEventID kernel.UUID) error {
	if err := scanEventID.Validate(); err != nil {
		return err
	}

	c.scanEventID = scanEventID
	return nil
}

func (c *ProcessScanCommand) setTrackingNumber(trackingNumber shipment.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *ProcessScanCommand) setRawScanType(rawScanType string) error {
	if rawScanType == "" {
		return ErrRawScanTypeIsRequired
	}

	c.rawScanType = rawScanType
	return nil
}
