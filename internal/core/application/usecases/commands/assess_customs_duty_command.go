package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAssessCustomsDutyCommandIsNotConstructed = errors.New(
		"AssessCustomsDutyCommand must be created via NewAssessCustomsDutyCommand constructor",
	)
	ErrAssessmentIsInvalid = errors.New("duty and tax must be non-negative with a positive total")
)

// AssessCustomsDutyCommand records the duty and tax assessed on a case.
type AssessCustomsDutyCommand struct { //nolint:recvcheck //using for validation
	caseID kernel.UUID
	duty   decimal.Decimal
	tax    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAssessCustomsDutyCommand creates a command assessing duty and tax.
// Both amounts must be non-negative and at least one must be positive.
func NewAssessCustomsDutyCommand(caseID kernel.UUID, duty, tax decimal.Decimal) (AssessCustomsDutyCommand, error) {
	if err := caseID.Validate(); err != nil {
		return AssessCustomsDutyCommand{}, err
	}
	if duty.IsNegative() || tax.IsNegative() || !duty.Add(tax).IsPositive() {
		return AssessCustomsDutyCommand{}, ErrAssessmentIsInvalid
	}

	return AssessCustomsDutyCommand{
		caseID: caseID,
		duty:   duty,
		tax:    tax,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssessCustomsDutyCommand) Validate() error {
	return c.guard.Validate(ErrAssessCustomsDutyCommandIsNotConstructed)
}

// CaseID returns the customs case to act on.
func (c AssessCustomsDutyCommand) CaseID() kernel.UUID {
	return c.caseID
}

// Duty returns the assessed duty amount.
func (c AssessCustomsDutyCommand) Duty() decimal.Decimal {
	return c.duty
}

// Tax returns the assessed tax amount.
func (c AssessCustomsDutyCommand) Tax() decimal.Decimal {
	return c.tax
}
