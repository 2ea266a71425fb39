package commands

import (
	"context"
)

// RequestCustomsDocumentsCommandHandler moves an open case into
// DocumentsRequired with the requested document list.
type RequestCustomsDocumentsCommandHandler struct {
	uowFactory CustomsUoWFactory
}

// NewRequestCustomsDocumentsCommandHandler creates a handler for document requests.
func NewRequestCustomsDocumentsCommandHandler(uowFactory CustomsUoWFactory) RequestCustomsDocumentsCommandHandler {
	return RequestCustomsDocumentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the document request command.
func (h *RequestCustomsDocumentsCommandHandler) Handle(ctx context.Context, cmd RequestCustomsDocumentsCommand) error {
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

	if err = customsCase.RequestDocuments(cmd.Documents()); err != nil {
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
