package commands

import (
	"context"
)

// RecordDutyPaymentCommandHandler accumulates duty payments on a case.
type RecordDutyPaymentCommandHandler struct {
	uowFactory CustomsUoWFactory
}

// NewRecordDutyPaymentCommandHandler creates a handler for duty payments.
func NewRecordDutyPaymentCommandHandler(uowFactory CustomsUoWFactory) RecordDutyPaymentCommandHandler {
	return RecordDutyPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
func (h *RecordDutyPaymentCommandHandler) Handle(ctx context.Context, cmd RecordDutyPaymentCommand) error {
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

	if err = customsCase.RecordDutyPayment(cmd.Amount()); err != nil {
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
