package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/shipment"
)

// ScanResult describes what applying one scan event did to one shipment.
type ScanResult struct {
	ScanEventID    string
	TrackingNumber string
	ScanType       shipment.ScanType
	PriorStatus    shipment.Status
	NewStatus      shipment.Status

	// Informational is true when the scan was recorded without moving the
	// status: unrecognized scan types, informational scan types, and
	// duplicate scans that matched the current status.
	Informational bool
}

// ProcessScanCommandHandler applies a single tracking scan to its shipment.
//
// Scan handling normalizes the raw event name first (legacy feed aliases map
// onto the canonical catalog), resolves the resulting status, and drives the
// shipment's transition. The status change and the history entry are
// persisted in one transaction.
type ProcessScanCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewProcessScanCommandHandler creates a handler for single-scan ingestion.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewProcessScanCommandHandler(uowFactory ShipmentUoWFactory) ProcessScanCommandHandler {
	return ProcessScanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the scan command.
//
// An unrecognized raw scan type is not an error: the event is appended to the
// history as informational and the status stays put. An illegal transition
// for a recognized scan fails the command and leaves the shipment untouched.
func (h *ProcessScanCommandHandler) Handle(ctx context.Context, cmd ProcessScanCommand) (ScanResult, error) {
	if err := cmd.Validate(); err != nil {
		return ScanResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ScanResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return ScanResult{}, err
	}

	result, err := applyScan(aggregate, cmd)
	if err != nil {
		return ScanResult{}, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return ScanResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ScanResult{}, err
	}

	return result, nil
}

// applyScan mutates the aggregate in memory according to one scan event.
// Shared with batch processing so single and batched scans behave identically.
func applyScan(aggregate *shipment.Shipment, cmd ProcessScanCommand) (ScanResult, error) {
	scanEventID := cmd.ScanEventID()
	prior := aggregate.Status()

	result := ScanResult{
		ScanEventID:    scanEventID.String(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		PriorStatus:    prior,
		NewStatus:      prior,
	}

	tctx := shipment.TransitionContext{
		Trigger:     shipment.TriggerScan,
		ScanEventID: &scanEventID,
		Performer:   cmd.Performer(),
		Note:        cmd.Note(),
		OccurredAt:  cmd.OccurredAt(),
	}

	scanType, known := shipment.NormalizeScanType(cmd.RawScanType())
	if !known {
		tctx.Note = fmt.Sprintf("unrecognized scan type %q", cmd.RawScanType())
		if err := aggregate.RecordInformationalEvent(tctx); err != nil {
			return ScanResult{}, err
		}
		result.Informational = true
		return result, nil
	}
	result.ScanType = scanType

	target, drivesStatus := scanType.ResultingStatus()
	if !drivesStatus {
		if err := aggregate.RecordInformationalEvent(tctx); err != nil {
			return ScanResult{}, err
		}
		result.Informational = true
		return result, nil
	}

	if err := aggregate.TransitionTo(target, tctx); err != nil {
		return ScanResult{}, err
	}

	result.NewStatus = aggregate.Status()
	result.Informational = result.NewStatus == prior
	return result, nil
}
