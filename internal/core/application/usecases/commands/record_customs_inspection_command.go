package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRecordCustomsInspectionCommandIsNotConstructed = errors.New(
	"RecordCustomsInspectionCommand must be created via NewRecordCustomsInspectionCommand constructor",
)

// RecordCustomsInspectionCommand records the outcome of a physical inspection
// on an open customs case.
type RecordCustomsInspectionCommand struct { //nolint:recvcheck //using for validation
	caseID kernel.UUID
	passed bool
	notes  string

	guard guard.ConstructorGuard
}

// NewRecordCustomsInspectionCommand creates a command recording an inspection outcome.
func NewRecordCustomsInspectionCommand(
	caseID kernel.UUID, passed bool, notes string,
) (RecordCustomsInspectionCommand, error) {
	if err := caseID.Validate(); err != nil {
		return RecordCustomsInspectionCommand{}, err
	}

	return RecordCustomsInspectionCommand{
		caseID: caseID,
		passed: passed,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCustomsInspectionCommand) Validate() error {
	return c.guard.Validate(ErrRecordCustomsInspectionCommandIsNotConstructed)
}

// CaseID returns the customs case to act on.
func (c RecordCustomsInspectionCommand) CaseID() kernel.UUID {
	return c.caseID
}

// Passed reports whether the inspection found the shipment compliant.
func (c RecordCustomsInspectionCommand) Passed() bool {
	return c.passed
}

// Notes returns the inspector's notes.
func (c RecordCustomsInspectionCommand) Notes() string {
	return c.notes
}
