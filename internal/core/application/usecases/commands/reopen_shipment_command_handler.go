package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// ReopenShipmentCommandHandler reopens a terminal shipment.
type ReopenShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewReopenShipmentCommandHandler creates a handler for terminal reopens.
func NewReopenShipmentCommandHandler(uowFactory ShipmentUoWFactory) ReopenShipmentCommandHandler {
	return ReopenShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reopen command. Without the elevated flag the command
// fails before the shipment is even loaded.
func (h *ReopenShipmentCommandHandler) Handle(ctx context.Context, cmd ReopenShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Elevated() {
		return shipment.ErrReopenRequiresAuthorization
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
		Trigger:   shipment.TriggerReopen,
		Performer: cmd.Performer(),
		Note:      cmd.Reason(),
		Override:  true,
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
