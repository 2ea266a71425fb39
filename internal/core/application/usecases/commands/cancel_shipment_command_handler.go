package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// CancelShipmentCommandHandler cancels a pre-pickup shipment.
// The transition table only admits Cancelled from the pre-pickup statuses,
// so an in-transit shipment is rejected with an illegal-transition error.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCancelShipmentCommandHandler creates a handler for shipment cancellation.
func NewCancelShipmentCommandHandler(uowFactory ShipmentUoWFactory) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(shipment.Cancelled, shipment.TransitionContext{
		Trigger:   shipment.TriggerManual,
		Performer: cmd.Performer(),
		Note:      cmd.Reason(),
	}); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
