package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var (
	ErrProcessScanBatchCommandIsNotConstructed = errors.New(
		"ProcessScanBatchCommand must be created via NewProcessScanBatchCommand constructor",
	)
	ErrBatchIsEmpty = errors.New("scan batch must contain at least one event")
)

// BatchScanEvent is one event inside a scan batch. It targets either a single
// shipment by tracking number or a whole bag by bag ID; bag-level events fan
// out to every shipment in the bag.
type BatchScanEvent struct {
	scanEventID    kernel.UUID
	trackingNumber *shipment.TrackingNumber
	bagID          *kernel.UUID
	rawScanType    string
	performer      string
	note           string
	occurredAt     time.Time
}

// NewShipmentScanEvent creates a batch event targeting one shipment.
func NewShipmentScanEvent(
	scanEventID kernel.UUID,
	trackingNumber shipment.TrackingNumber,
	rawScanType, performer, note string,
	occurredAt time.Time,
) (BatchScanEvent, error) {
	if err := errors.Join(
		scanEventID.Validate(),
		trackingNumber.Validate(),
	); err != nil {
		return BatchScanEvent{}, err
	}
	if rawScanType == "" {
		return BatchScanEvent{}, ErrRawScanTypeIsRequired
	}

	return BatchScanEvent{
		scanEventID:    scanEventID,
		trackingNumber: &trackingNumber,
		rawScanType:    rawScanType,
		performer:      performer,
		note:           note,
		occurredAt:     occurredAt,
	}, nil
}

// NewBagScanEvent creates a batch event targeting every shipment in a bag.
func NewBagScanEvent(
	scanEventID, bagID kernel.UUID,
	rawScanType, performer, note string,
	occurredAt time.Time,
) (BatchScanEvent, error) {
	if err := errors.Join(
		scanEventID.Validate(),
		bagID.Validate(),
	); err != nil {
		return BatchScanEvent{}, err
	}
	if rawScanType == "" {
		return BatchScanEvent{}, ErrRawScanTypeIsRequired
	}

	return BatchScanEvent{
		scanEventID: scanEventID,
		bagID:       &bagID,
		rawScanType: rawScanType,
		performer:   performer,
		note:        note,
		occurredAt:  occurredAt,
	}, nil
}

// ScanEventID returns the unique identifier of the scan event.
func (e BatchScanEvent) ScanEventID() kernel.UUID { return e.scanEventID }

// TrackingNumber returns the targeted tracking number, or nil for bag events.
func (e BatchScanEvent) TrackingNumber() *shipment.TrackingNumber { return e.trackingNumber }

// BagID returns the targeted bag, or nil for shipment events.
func (e BatchScanEvent) BagID() *kernel.UUID { return e.bagID }

// RawScanType returns the scan type exactly as received on the wire.
func (e BatchScanEvent) RawScanType() string { return e.rawScanType }

// Performer returns the operator or device that produced the scan.
func (e BatchScanEvent) Performer() string { return e.performer }

// Note returns the free-text note attached to the scan.
func (e BatchScanEvent) Note() string { return e.note }

// OccurredAt returns the scan timestamp reported by the device.
func (e BatchScanEvent) OccurredAt() time.Time { return e.occurredAt }

// ProcessScanBatchCommand represents a batch of scan events uploaded
// together, typically a courier device sync or a hub manifest feed.
// Events are applied strictly in the order given.
type ProcessScanBatchCommand struct { //nolint:recvcheck //using for validation
	events []BatchScanEvent

	guard guard.ConstructorGuard
}

// NewProcessScanBatchCommand creates a command carrying the given events.
// The batch must not be empty.
func NewProcessScanBatchCommand(events []BatchScanEvent) (ProcessScanBatchCommand, error) {
	if len(events) == 0 {
		return ProcessScanBatchCommand{}, ErrBatchIsEmpty
	}

	return ProcessScanBatchCommand{
		events: append([]BatchScanEvent(nil), events...),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessScanBatchCommandIsNotConstructed if validation fails.
func (c ProcessScanBatchCommand) Validate() error {
	return c.guard.Validate(ErrProcessScanBatchCommandIsNotConstructed)
}

// Events returns the batch events in application order.
func (c ProcessScanBatchCommand) Events() []BatchScanEvent {
	return append([]BatchScanEvent(nil), c.events...)
}
