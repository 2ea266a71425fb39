package commands

import (
	"context"
)

// SubmitCustomsDocumentsCommandHandler records received paperwork and returns
// the case to the clearance queue.
type SubmitCustomsDocumentsCommandHandler struct {
	uowFactory CustomsUoWFactory
}

// NewSubmitCustomsDocumentsCommandHandler creates a handler for document submissions.
func NewSubmitCustomsDocumentsCommandHandler(uowFactory CustomsUoWFactory) SubmitCustomsDocumentsCommandHandler {
	return SubmitCustomsDocumentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the document submission command.
func (h *SubmitCustomsDocumentsCommandHandler) Handle(ctx context.Context, cmd SubmitCustomsDocumentsCommand) error {
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

	if err = customsCase.SubmitDocuments(cmd.Documents()); err != nil {
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
