package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// BatchScanOutcome is the per-shipment result of one batch event. A bag-level
// event produces one outcome per shipment in the bag.
type BatchScanOutcome struct {
	EventIndex     int
	ScanEventID    string
	TrackingNumber string

	// Result is set when the event applied (possibly as informational).
	Result *ScanResult

	// Err is set when this event failed; other events are unaffected.
	Err error
}

// ProcessScanBatchCommandHandler applies a batch of scan events in order.
//
// The batch is never atomic: each event runs in its own transaction, so an
// illegal transition or a missing shipment fails only that event and the
// remainder of the batch still applies. Bag-level events fan out to every
// shipment in the bag with independent per-shipment outcomes.
type ProcessScanBatchCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewProcessScanBatchCommandHandler creates a handler for batched scan ingestion.
// Requires a ShipmentUoWFactory for per-event transactional persistence.
func NewProcessScanBatchCommandHandler(uowFactory ShipmentUoWFactory) ProcessScanBatchCommandHandler {
	return ProcessScanBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch, returning one outcome per affected shipment in
// application order. The returned error covers only command validation;
// event-level failures are reported inside the outcomes.
func (h *ProcessScanBatchCommandHandler) Handle(
	ctx context.Context, cmd ProcessScanBatchCommand,
) ([]BatchScanOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	events := cmd.Events()
	outcomes := make([]BatchScanOutcome, 0, len(events))

	for i, event := range events {
		if event.BagID() != nil {
			outcomes = append(outcomes, h.applyBagEvent(ctx, i, event)...)
			continue
		}
		outcomes = append(outcomes, h.applyShipmentEvent(ctx, i, event, *event.TrackingNumber()))
	}

	return outcomes, nil
}

func (h *ProcessScanBatchCommandHandler) applyShipmentEvent(
	ctx context.Context, index int, event BatchScanEvent, trackingNumber shipment.TrackingNumber,
) BatchScanOutcome {
	outcome := BatchScanOutcome{
		EventIndex:     index,
		ScanEventID:    event.ScanEventID().String(),
		TrackingNumber: trackingNumber.String(),
	}

	scanCmd, err := NewProcessScanCommand(
		event.ScanEventID(),
		trackingNumber,
		event.RawScanType(),
		event.Performer(),
		event.Note(),
		event.OccurredAt(),
	)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	handler := NewProcessScanCommandHandler(h.uowFactory)
	result, err := handler.Handle(ctx, scanCmd)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Result = &result
	return outcome
}

// applyBagEvent resolves the bag membership in a short read transaction, then
// applies the event to each member independently.
func (h *ProcessScanBatchCommandHandler) applyBagEvent(
	ctx context.Context, index int, event BatchScanEvent,
) []BatchScanOutcome {
	members, err := h.bagMembers(ctx, event)
	if err != nil {
		return []BatchScanOutcome{{
			EventIndex:  index,
			ScanEventID: event.ScanEventID().String(),
			Err:         err,
		}}
	}

	outcomes := make([]BatchScanOutcome, 0, len(members))
	for _, trackingNumber := range members {
		outcomes = append(outcomes, h.applyShipmentEvent(ctx, index, event, trackingNumber))
	}
	return outcomes
}

func (h *ProcessScanBatchCommandHandler) bagMembers(
	ctx context.Context, event BatchScanEvent,
) ([]shipment.TrackingNumber, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipments, err := uow.ShipmentRepository().GetAllInBag(ctx, *event.BagID())
	if err != nil {
		return nil, err
	}

	members := make([]shipment.TrackingNumber, 0, len(shipments))
	for _, aggregate := range shipments {
		members = append(members, aggregate.TrackingNumber())
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return members, nil
}
