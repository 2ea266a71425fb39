package customs

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrCaseIsNotConstructed is returned when a Case instance was not created
// through NewCase or RestoreCase.
var ErrCaseIsNotConstructed = errors.New("Case must be created via NewCase constructor")

// Case is the customs clearance record for one shipment under customs
// control. It is created when the shipment is placed on customs hold and
// closed, never deleted, when cleared or rejected.
//
// The case owns only its own sub-workflow; coordinating the parent shipment's
// lifecycle status (CustomsHold on open, CustomsCleared on clear) is done by
// the application layer inside a single unit of work.
type Case struct {
	id              kernel.UUID
	shipmentID      kernel.UUID
	subStatus       SubStatus
	holdReason      string
	requiredDocs    []string
	submittedDocs   []string
	inspectionDone  bool
	inspectionPass  bool
	inspectionNotes string
	dutyAssessed    decimal.Decimal
	taxAssessed     decimal.Decimal
	dutyPaid        decimal.Decimal
	clearanceNumber string
	rejectionReason string
	openedAt        time.Time
	closedAt        *time.Time
	isConstructed   bool
}

// NewCase opens a customs case for a shipment placed on hold.
// The case starts in the Held sub-status with the given hold reason.
func NewCase(id, shipmentID kernel.UUID, holdReason string) (*Case, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	if holdReason == "" {
		return nil, errs.NewValueIsRequiredError("hold reason")
	}

	return &Case{
		id:            id,
		shipmentID:    shipmentID,
		subStatus:     Held,
		holdReason:    holdReason,
		dutyAssessed:  decimal.Zero,
		taxAssessed:   decimal.Zero,
		dutyPaid:      decimal.Zero,
		openedAt:      time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreCase reconstructs a case from persistence.
func RestoreCase(
	id, shipmentID kernel.UUID,
	subStatus SubStatus,
	holdReason string,
	requiredDocs, submittedDocs []string,
	inspectionDone, inspectionPass bool,
	inspectionNotes string,
	dutyAssessed, taxAssessed, dutyPaid decimal.Decimal,
	clearanceNumber, rejectionReason string,
	openedAt time.Time,
	closedAt *time.Time,
) (*Case, error) {
	if err := errors.Join(id.Validate(), shipmentID.Validate(), subStatus.Validate()); err != nil {
		return nil, err
	}

	return &Case{
		id:              id,
		shipmentID:      shipmentID,
		subStatus:       subStatus,
		holdReason:      holdReason,
		requiredDocs:    requiredDocs,
		submittedDocs:   submittedDocs,
		inspectionDone:  inspectionDone,
		inspectionPass:  inspectionPass,
		inspectionNotes: inspectionNotes,
		dutyAssessed:    dutyAssessed,
		taxAssessed:     taxAssessed,
		dutyPaid:        dutyPaid,
		clearanceNumber: clearanceNumber,
		rejectionReason: rejectionReason,
		openedAt:        openedAt,
		closedAt:        closedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Case was constructed via NewCase/RestoreCase.
func (c *Case) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCaseIsNotConstructed
	}
	return nil
}

// ID returns the case identifier.
func (c *Case) ID() kernel.UUID { return c.id }

// ShipmentID returns the shipment under customs control.
func (c *Case) ShipmentID() kernel.UUID { return c.shipmentID }

// SubStatus returns the current sub-workflow state.
func (c *Case) SubStatus() SubStatus { return c.subStatus }

// HoldReason returns why the shipment was placed on hold.
func (c *Case) HoldReason() string { return c.holdReason }

// RequiredDocuments returns the documents customs asked for.
func (c *Case) RequiredDocuments() []string { return append([]string(nil), c.requiredDocs...) }

// SubmittedDocuments returns the documents received so far.
func (c *Case) SubmittedDocuments() []string { return append([]string(nil), c.submittedDocs...) }

// InspectionRecorded reports whether an inspection outcome was recorded,
// and whether it passed.
func (c *Case) InspectionRecorded() (done, passed bool) { return c.inspectionDone, c.inspectionPass }

// InspectionNotes returns the inspector's notes.
func (c *Case) InspectionNotes() string { return c.inspectionNotes }

// DutyAssessed returns the assessed duty amount.
func (c *Case) DutyAssessed() decimal.Decimal { return c.dutyAssessed }

// TaxAssessed returns the assessed tax amount.
func (c *Case) TaxAssessed() decimal.Decimal { return c.taxAssessed }

// DutyPaid returns the accumulated payments.
func (c *Case) DutyPaid() decimal.Decimal { return c.dutyPaid }

// TotalDue returns duty plus tax.
func (c *Case) TotalDue() decimal.Decimal { return c.dutyAssessed.Add(c.taxAssessed) }

// OutstandingDuty returns the unpaid remainder, never negative.
func (c *Case) OutstandingDuty() decimal.Decimal {
	outstanding := c.TotalDue().Sub(c.dutyPaid)
	if outstanding.IsNegative() {
		return decimal.Zero
	}
	return outstanding
}

// ClearanceNumber returns the clearance number once cleared.
func (c *Case) ClearanceNumber() string { return c.clearanceNumber }

// RejectionReason returns the rejection reason once rejected.
func (c *Case) RejectionReason() string { return c.rejectionReason }

// OpenedAt returns when the case was opened.
func (c *Case) OpenedAt() time.Time { return c.openedAt }

// ClosedAt returns when the case was closed (cleared or rejected), or nil.
func (c *Case) ClosedAt() *time.Time { return c.closedAt }

// IsOpen reports whether the case can still be worked.
func (c *Case) IsOpen() bool { return c.closedAt == nil && !c.subStatus.IsTerminal() }

// ReleaseHold moves a held case back to Pending so the clearance steps can
// proceed.
func (c *Case) ReleaseHold() error {
	if err := c.guardOpen("release hold"); err != nil {
		return err
	}
	if c.subStatus != Held {
		return NewWorkflowViolationError("release hold", c.subStatus)
	}
	c.subStatus = Pending
	return nil
}

// RequestDocuments records which documents customs requires and moves the
// case to DocumentsRequired. Allowed from Pending and Held.
func (c *Case) RequestDocuments(docs []string) error {
	if err := c.guardOpen("request documents"); err != nil {
		return err
	}
	if len(docs) == 0 {
		return errs.NewValueIsRequiredError("required documents")
	}
	if c.subStatus != Pending && c.subStatus != Held {
		return NewWorkflowViolationError("request documents", c.subStatus)
	}
	c.requiredDocs = append(c.requiredDocs, docs...)
	c.subStatus = DocumentsRequired
	return nil
}

// SubmitDocuments records received documents and returns the case to
// Pending. Resubmission after another request cycles the case back through
// DocumentsRequired.
func (c *Case) SubmitDocuments(docs []string) error {
	if err := c.guardOpen("submit documents"); err != nil {
		return err
	}
	if len(docs) == 0 {
		return errs.NewValueIsRequiredError("submitted documents")
	}
	if c.subStatus != DocumentsRequired {
		return NewWorkflowViolationError("submit documents", c.subStatus)
	}
	c.submittedDocs = append(c.submittedDocs, docs...)
	c.subStatus = Pending
	return nil
}

// RecordInspection records the outcome of a physical inspection.
// A passed inspection returns the case to Pending; a failed one holds it.
func (c *Case) RecordInspection(passed bool, notes string) error {
	if err := c.guardOpen("record inspection"); err != nil {
		return err
	}
	if c.subStatus != Pending && c.subStatus != UnderInspection {
		return NewWorkflowViolationError("record inspection", c.subStatus)
	}
	c.inspectionDone = true
	c.inspectionPass = passed
	c.inspectionNotes = notes
	if passed {
		c.subStatus = Pending
	} else {
		c.subStatus = Held
	}
	return nil
}

// AssessDuty records the assessed duty and tax and moves the case to
// DutyRequired. Amounts must be non-negative and sum to more than zero.
func (c *Case) AssessDuty(duty, tax decimal.Decimal) error {
	if err := c.guardOpen("assess duty"); err != nil {
		return err
	}
	if c.subStatus != Pending {
		return NewWorkflowViolationError("assess duty", c.subStatus)
	}
	if duty.IsNegative() || tax.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("duty assessment",
			fmt.Errorf("duty %s and tax %s must not be negative", duty, tax))
	}
	if !duty.Add(tax).IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("duty assessment",
			fmt.Errorf("assessed total must be greater than 0"))
	}
	c.dutyAssessed = duty
	c.taxAssessed = tax
	c.subStatus = DutyRequired
	return nil
}

// RecordDutyPayment accumulates a payment against the assessed total.
// Prior payments are never dropped. Once accumulated payments reach the
// total due the case returns to Pending (cleared to continue normal flow);
// a partial payment leaves it in DutyRequired.
func (c *Case) RecordDutyPayment(amount decimal.Decimal) error {
	if err := c.guardOpen("record duty payment"); err != nil {
		return err
	}
	if c.subStatus != DutyRequired {
		return NewWorkflowViolationError("record duty payment", c.subStatus)
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("duty payment",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	c.dutyPaid = c.dutyPaid.Add(amount)
	if c.dutyPaid.GreaterThanOrEqual(c.TotalDue()) {
		c.subStatus = Pending
	}
	return nil
}

// Clear closes the case as cleared. Allowed only from Pending: documents,
// inspection and duty must all be resolved first. The clearance number is
// mandatory. The application layer transitions the parent shipment to
// CustomsCleared in the same unit of work.
func (c *Case) Clear(clearanceNumber string) error {
	if err := c.guardOpen("clear"); err != nil {
		return err
	}
	if clearanceNumber == "" {
		return errs.NewValueIsRequiredError("clearance number")
	}
	if c.subStatus != Pending {
		return NewWorkflowViolationError("clear", c.subStatus)
	}
	c.clearanceNumber = clearanceNumber
	c.subStatus = Cleared
	c.close()
	return nil
}

// Reject closes the case as rejected. Allowed from any open state; the
// reason is mandatory.
func (c *Case) Reject(reason string) error {
	if err := c.guardOpen("reject"); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	c.rejectionReason = reason
	c.subStatus = Rejected
	c.close()
	return nil
}

func (c *Case) guardOpen(operation string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsOpen() {
		return NewWorkflowViolationError(operation, c.subStatus)
	}
	return nil
}

func (c *Case) close() {
	now := time.Now().UTC()
	c.closedAt = &now
}
