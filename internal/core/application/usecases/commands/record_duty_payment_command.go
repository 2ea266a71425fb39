package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordDutyPaymentCommandIsNotConstructed = errors.New(
		"RecordDutyPaymentCommand must be created via NewRecordDutyPaymentCommand constructor",
	)
	ErrPaymentAmountIsInvalid = errors.New("payment amount must be greater than 0")
)

// RecordDutyPaymentCommand records a duty payment against a case. Partial
// payments accumulate; clearance eligibility returns once the total due is
// covered.
type RecordDutyPaymentCommand struct { //nolint:recvcheck //using for validation
	caseID kernel.UUID
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRecordDutyPaymentCommand creates a command recording a duty payment.
func NewRecordDutyPaymentCommand(caseID kernel.UUID, amount decimal.Decimal) (RecordDutyPaymentCommand, error) {
	if err := caseID.Validate(); err != nil {
		return RecordDutyPaymentCommand{}, err
	}
	if !amount.IsPositive() {
		return RecordDutyPaymentCommand{}, ErrPaymentAmountIsInvalid
	}

	return RecordDutyPaymentCommand{
		caseID: caseID,
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDutyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordDutyPaymentCommandIsNotConstructed)
}

// CaseID returns the customs case to act on.
func (c RecordDutyPaymentCommand) CaseID() kernel.UUID {
	return c.caseID
}

// Amount returns the paid amount.
func (c RecordDutyPaymentCommand) Amount() decimal.Decimal {
	return c.amount
}
