package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSubmitCustomsDocumentsCommandIsNotConstructed = errors.New(
	"SubmitCustomsDocumentsCommand must be created via NewSubmitCustomsDocumentsCommand constructor",
)

// SubmitCustomsDocumentsCommand records documents received from the declarant
// for a case awaiting paperwork.
type SubmitCustomsDocumentsCommand struct { //nolint:recvcheck //using for validation
	caseID    kernel.UUID
	documents []string

	guard guard.ConstructorGuard
}

// NewSubmitCustomsDocumentsCommand creates a command submitting the named documents.
func NewSubmitCustomsDocumentsCommand(caseID kernel.UUID, documents []string) (SubmitCustomsDocumentsCommand, error) {
	if err := caseID.Validate(); err != nil {
		return SubmitCustomsDocumentsCommand{}, err
	}
	if len(documents) == 0 {
		return SubmitCustomsDocumentsCommand{}, ErrDocumentListIsRequired
	}

	return SubmitCustomsDocumentsCommand{
		caseID:    caseID,
		documents: append([]string(nil), documents...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitCustomsDocumentsCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCustomsDocumentsCommandIsNotConstructed)
}

// CaseID returns the customs case to act on.
func (c SubmitCustomsDocumentsCommand) CaseID() kernel.UUID {
	return c.caseID
}

// Documents returns the submitted document names.
func (c SubmitCustomsDocumentsCommand) Documents() []string {
	return append([]string(nil), c.documents...)
}
