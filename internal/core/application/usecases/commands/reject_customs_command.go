package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrRejectCustomsCommandIsNotConstructed = errors.New(
		"RejectCustomsCommand must be created via NewRejectCustomsCommand constructor",
	)
	ErrRejectionReasonIsRequired = errors.New("rejection reason is required")
)

// RejectCustomsCommand closes a customs case as rejected and routes the
// parent shipment into the exception flow.
type RejectCustomsCommand struct { //nolint:recvcheck //using for validation
	caseID    kernel.UUID
	reason    string
	performer string

	guard guard.ConstructorGuard
}

// NewRejectCustomsCommand creates a command rejecting a customs case.
func NewRejectCustomsCommand(caseID kernel.UUID, reason, performer string) (RejectCustomsCommand, error) {
	if err := caseID.Validate(); err != nil {
		return RejectCustomsCommand{}, err
	}
	if reason == "" {
		return RejectCustomsCommand{}, ErrRejectionReasonIsRequired
	}

	return RejectCustomsCommand{
		caseID:    caseID,
		reason:    reason,
		performer: performer,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectCustomsCommand) Validate() error {
	return c.guard.Validate(ErrRejectCustomsCommandIsNotConstructed)
}

// CaseID returns the customs case to reject.
func (c RejectCustomsCommand) CaseID() kernel.UUID {
	return c.caseID
}

// Reason returns the rejection reason.
func (c RejectCustomsCommand) Reason() string {
	return c.reason
}

// Performer returns the officer rejecting the case.
func (c RejectCustomsCommand) Performer() string {
	return c.performer
}
