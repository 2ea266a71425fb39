package commands

import (
	"context"
)

// RecordCustomsInspectionCommandHandler records an inspection outcome.
// A failed inspection puts the case back on hold.
type RecordCustomsInspectionCommandHandler struct {
	uowFactory CustomsUoWFactory
}

// NewRecordCustomsInspectionCommandHandler creates a handler for inspection outcomes.
func NewRecordCustomsInspectionCommandHandler(uowFactory CustomsUoWFactory) RecordCustomsInspectionCommandHandler {
	return RecordCustomsInspectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inspection command.
func (h *RecordCustomsInspectionCommandHandler) Handle(ctx context.Context, cmd RecordCustomsInspectionCommand) error {
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

	repo := uow.CustomsCaseRepository()
	customsCase, err := repo.Get(ctx, cmd.CaseID())
	if err != nil {
		return err
	}

	if err = customsCase.RecordInspection(cmd.Passed(), cmd.Notes()); err != nil {
		return err
	}

	if err = repo.Update(ctx, customsCase); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
