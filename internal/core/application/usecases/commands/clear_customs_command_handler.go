package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/shipment"
)

// ClearCustomsCommandHandler clears the case and moves the parent shipment to
// CustomsCleared in one transaction, so a cleared case can never coexist with
// a shipment still marked as held.
type ClearCustomsCommandHandler struct {
	uowFactory UoWFactory
}

// NewClearCustomsCommandHandler creates a handler for customs clearance.
// Requires a cross-aggregate UoWFactory.
func NewClearCustomsCommandHandler(uowFactory UoWFactory) ClearCustomsCommandHandler {
	return ClearCustomsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clearance command.
func (h *ClearCustomsCommandHandler) Handle(ctx context.Context, cmd ClearCustomsCommand) error {
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

	customsCase, err := uow.CustomsCaseRepository().Get(ctx, cmd.CaseID())
	if err != nil {
		return err
	}

	if err = customsCase.Clear(cmd.ClearanceNumber()); err != nil {
		return err
	}

	aggregate, err := uow.ShipmentRepository().Get(ctx, customsCase.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(shipment.CustomsCleared, shipment.TransitionContext{
		Trigger:   shipment.TriggerCustoms,
		Performer: cmd.Performer(),
		Note:      fmt.Sprintf("cleared under %s", cmd.ClearanceNumber()),
	}); err != nil {
		return err
	}

	if err = uow.CustomsCaseRepository().Update(ctx, customsCase); err != nil {
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
