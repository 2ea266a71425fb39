package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrRequestCustomsDocumentsCommandIsNotConstructed = errors.New(
		"RequestCustomsDocumentsCommand must be created via NewRequestCustomsDocumentsCommand constructor",
	)
	ErrDocumentListIsRequired = errors.New("at least one document must be named")
)

// RequestCustomsDocumentsCommand asks the declarant for additional paperwork
// on an open customs case.
type RequestCustomsDocumentsCommand struct { //nolint:recvcheck //using for validation
	caseID    kernel.UUID
	documents []string

	guard guard.ConstructorGuard
}

// NewRequestCustomsDocumentsCommand creates a command requesting the named documents.
func NewRequestCustomsDocumentsCommand(caseID kernel.UUID, documents []string) (RequestCustomsDocumentsCommand, error) {
	if err := caseID.Validate(); err != nil {
		return RequestCustomsDocumentsCommand{}, err
	}
	if len(documents) == 0 {
		return RequestCustomsDocumentsCommand{}, ErrDocumentListIsRequired
	}

	return RequestCustomsDocumentsCommand{
		caseID:    caseID,
		documents: append([]string(nil), documents...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCustomsDocumentsCommand) Validate() error {
	return c.guard.Validate(ErrRequestCustomsDocumentsCommandIsNotConstructed)
}

// CaseID returns the customs case to act on.
func (c RequestCustomsDocumentsCommand) CaseID() kernel.UUID {
	return c.caseID
}

// Documents returns the requested document names.
func (c RequestCustomsDocumentsCommand) Documents() []string {
	return append([]string(nil), c.documents...)
}
