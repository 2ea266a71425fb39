package commands

import (
	"context"

	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/shipment"
)

// PlaceCustomsHoldCommandHandler opens a customs case and moves the parent
// shipment into CustomsHold. Both writes share one transaction: either the
// case exists and the shipment is held, or neither happened.
type PlaceCustomsHoldCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceCustomsHoldCommandHandler creates a handler for placing customs holds.
// Requires a cross-aggregate UoWFactory because the case and the shipment
// change together.
func NewPlaceCustomsHoldCommandHandler(uowFactory UoWFactory) PlaceCustomsHoldCommandHandler {
	return PlaceCustomsHoldCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hold command.
// CustomsHold is reachable from any non-terminal status, so the transition
// only fails for shipments already closed out.
func (h *PlaceCustomsHoldCommandHandler) Handle(ctx context.Context, cmd PlaceCustomsHoldCommand) error {
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

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	customsCase, err := customs.NewCase(cmd.CaseID(), cmd.ShipmentID(), cmd.HoldReason())
	if err != nil {
		return err
	}

	aggregate.MarkRequiresCustoms()
	if err = aggregate.TransitionTo(shipment.CustomsHold, shipment.TransitionContext{
		Trigger:   shipment.TriggerCustoms,
		Performer: cmd.Performer(),
		Note:      cmd.HoldReason(),
	}); err != nil {
		return err
	}

	if err = uow.CustomsCaseRepository().Add(ctx, customsCase); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
