package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// TransitionShipmentCommandHandler applies a manual status change.
// Terminal shipments still reject this path; reopening goes through
// ReopenShipmentCommand so the correction is recorded with its own trigger.
type TransitionShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewTransitionShipmentCommandHandler creates a handler for manual transitions.
func NewTransitionShipmentCommandHandler(uowFactory ShipmentUoWFactory) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual transition command.
func (h *TransitionShipmentCommandHandler) Handle(ctx context.Context, cmd TransitionShipmentCommand) error {
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

	if err = aggregate.TransitionTo(cmd.Target(), shipment.TransitionContext{
		Trigger:   shipment.TriggerManual,
		Performer: cmd.Performer(),
		Note:      cmd.Note(),
		Override:  cmd.Override(),
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
