package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// RejectCustomsCommandHandler rejects the case and moves the parent shipment
// into Exception in one transaction. From Exception the shipment continues
// through the return flow or is written off as damaged.
type RejectCustomsCommandHandler struct {
	uowFactory UoWFactory
}

// NewRejectCustomsCommandHandler creates a handler for customs rejections.
// Requires a cross-aggregate UoWFactory.
func NewRejectCustomsCommandHandler(uowFactory UoWFactory) RejectCustomsCommandHandler {
	return RejectCustomsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h *RejectCustomsCommandHandler) Handle(ctx context.Context, cmd RejectCustomsCommand) error {
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

	if err = customsCase.Reject(cmd.Reason()); err != nil {
		return err
	}

	aggregate, err := uow.ShipmentRepository().Get(ctx, customsCase.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(shipment.Exception, shipment.TransitionContext{
		Trigger:   shipment.TriggerCustoms,
		Performer: cmd.Performer(),
		Note:      cmd.Reason(),
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
