package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrClearCustomsCommandIsNotConstructed = errors.New(
		"ClearCustomsCommand must be created via NewClearCustomsCommand constructor",
	)
	ErrClearanceNumberIsRequired = errors.New("clearance number is required")
)

// ClearCustomsCommand closes a customs case as cleared and releases the
// parent shipment back into the delivery flow.
type ClearCustomsCommand struct { //nolint:recvcheck //using for validation
	caseID          kernel.UUID
	clearanceNumber string
	performer       string

	guard guard.ConstructorGuard
}

// NewClearCustomsCommand creates a command clearing a customs case.
// The issued clearance number is mandatory.
func NewClearCustomsCommand(caseID kernel.UUID, clearanceNumber, performer string) (ClearCustomsCommand, error) {
	if err := caseID.Validate(); err != nil {
		return ClearCustomsCommand{}, err
	}
	if clearanceNumber == "" {
		return ClearCustomsCommand{}, ErrClearanceNumberIsRequired
	}

	return ClearCustomsCommand{
		caseID:          caseID,
		clearanceNumber: clearanceNumber,
		performer:       performer,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCustomsCommand) Validate() error {
	return c.guard.Validate(ErrClearCustomsCommandIsNotConstructed)
}

// CaseID returns the customs case to clear.
func (c ClearCustomsCommand) CaseID() kernel.UUID {
	return c.caseID
}

// ClearanceNumber returns the issued clearance number.
func (c ClearCustomsCommand) ClearanceNumber() string {
	return c.clearanceNumber
}

// Performer returns the officer clearing the case.
func (c ClearCustomsCommand) Performer() string {
	return c.performer
}
