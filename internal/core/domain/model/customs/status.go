package customs

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// SubStatus is the state of a customs case within the clearance sub-workflow.
// It is only meaningful while the parent shipment sits in a customs-adjacent
// lifecycle status.
//
// Workflow:
//
//	Held ──> Pending ──> DocumentsRequired ──> Pending   (resubmission loop)
//	         Pending ──> UnderInspection ──> Pending (passed) / Held (failed)
//	         Pending ──> DutyRequired ──> Pending (fully paid)
//	         Pending ──> Cleared                          (terminal)
//	         any open state ──> Rejected                  (terminal, with reason)
type SubStatus int

const (
	// SubStatusUnknown represents an invalid or undefined sub-status.
	SubStatusUnknown SubStatus = iota

	// Pending means the case is waiting for the next clearance step.
	// It is also the "cleared to continue" state after documents, inspection
	// or duty are satisfied.
	Pending

	// DocumentsRequired means customs requested documents from the customer.
	DocumentsRequired

	// UnderInspection means a physical inspection is in progress.
	UnderInspection

	// DutyRequired means assessed duty and tax are not yet fully paid.
	DutyRequired

	// Cleared means the shipment was released by customs. Terminal.
	Cleared

	// Rejected means clearance was refused. Terminal, requires a reason.
	Rejected

	// Held means the case is on hold: the initial state after placing a
	// shipment under customs control, and the outcome of a failed inspection.
	Held
)

func getSubStatusStrings() map[SubStatus]string {
	return map[SubStatus]string{
		SubStatusUnknown:  "Unknown",
		Pending:           "Pending",
		DocumentsRequired: "DocumentsRequired",
		UnderInspection:   "UnderInspection",
		DutyRequired:      "DutyRequired",
		Cleared:           "Cleared",
		Rejected:          "Rejected",
		Held:              "Held",
	}
}

// Validate checks if the SubStatus value is a member of the enumeration.
func (s SubStatus) Validate() error {
	if s == SubStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("customs sub-status is invalid",
			fmt.Errorf("%d is not a valid customs sub-status", s))
	}
	if _, ok := getSubStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("customs sub-status is invalid",
			fmt.Errorf("%d is not a valid customs sub-status", s))
	}
	return nil
}

// String returns the human-readable name of the sub-status.
func (s SubStatus) String() string {
	if str, ok := getSubStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the case can no longer move.
func (s SubStatus) IsTerminal() bool {
	return s == Cleared || s == Rejected
}

// ErrWorkflowViolation is the sentinel error for customs-case operations
// attempted outside the sub-workflow's legal edges.
var ErrWorkflowViolation = errors.New("customs workflow violation")

// WorkflowViolationError reports which operation was attempted from which
// sub-status, so operators can see the specific illegal step.
type WorkflowViolationError struct {
	Operation string
	From      SubStatus
}

func NewWorkflowViolationError(operation string, from SubStatus) *WorkflowViolationError {
	return &WorkflowViolationError{Operation: operation, From: from}
}

func (e *WorkflowViolationError) Error() string {
	return fmt.Sprintf("%s: cannot %s while case is %s", ErrWorkflowViolation, e.Operation, e.From)
}

func (e *WorkflowViolationError) Unwrap() error {
	return ErrWorkflowViolation
}
