package commands

import (
	"context"
)

// AssessCustomsDutyCommandHandler records a duty assessment, moving the case
// to DutyRequired until payment covers the total due.
type AssessCustomsDutyCommandHandler struct {
	uowFactory CustomsUoWFactory
}

// NewAssessCustomsDutyCommandHandler creates a handler for duty assessments.
func NewAssessCustomsDutyCommandHandler(uowFactory CustomsUoWFactory) AssessCustomsDutyCommandHandler {
	return AssessCustomsDutyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assessment command.
func (h *AssessCustomsDutyCommandHandler) Handle(ctx context.Context, cmd AssessCustomsDutyCommand) error {
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

	if err = customsCase.AssessDuty(cmd.Duty(), cmd.Tax()); err != nil {
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
