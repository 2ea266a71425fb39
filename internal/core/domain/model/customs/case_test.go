package customs_test

import (
	"testing"

	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCase(t *testing.T) *customs.Case {
	t.Helper()
	c, err := customs.NewCase(kernel.NewUUID(), kernel.NewUUID(), "missing commercial invoice")
	require.NoError(t, err)
	return c
}

// pendingCase opens a case and releases the initial hold.
func pendingCase(t *testing.T) *customs.Case {
	t.Helper()
	c := validCase(t)
	require.NoError(t, c.ReleaseHold())
	return c
}

func TestNewCase(t *testing.T) {
	t.Run("should open in Held with the hold reason", func(t *testing.T) {
		c := validCase(t)

		require.NoError(t, c.Validate())
		assert.Equal(t, customs.Held, c.SubStatus())
		assert.Equal(t, "missing commercial invoice", c.HoldReason())
		assert.True(t, c.IsOpen())
		assert.Nil(t, c.ClosedAt())
		assert.False(t, c.OpenedAt().IsZero())
	})

	t.Run("should fail without a hold reason", func(t *testing.T) {
		c, err := customs.NewCase(kernel.NewUUID(), kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should fail with invalid shipment id", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := customs.NewCase(kernel.NewUUID(), invalidID, "reason")

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestCase_DocumentCycle(t *testing.T) {
	t.Run("should cycle documents required -> pending", func(t *testing.T) {
		c := pendingCase(t)

		require.NoError(t, c.RequestDocuments([]string{"commercial invoice", "packing list"}))
		assert.Equal(t, customs.DocumentsRequired, c.SubStatus())

		require.NoError(t, c.SubmitDocuments([]string{"commercial invoice", "packing list"}))
		assert.Equal(t, customs.Pending, c.SubStatus())
		assert.Equal(t, []string{"commercial invoice", "packing list"}, c.SubmittedDocuments())
	})

	t.Run("should allow a second request cycle and keep all documents", func(t *testing.T) {
		c := pendingCase(t)
		require.NoError(t, c.RequestDocuments([]string{"commercial invoice"}))
		require.NoError(t, c.SubmitDocuments([]string{"commercial invoice"}))

		require.NoError(t, c.RequestDocuments([]string{"certificate of origin"}))
		require.NoError(t, c.SubmitDocuments([]string{"certificate of origin"}))

		assert.Equal(t, []string{"commercial invoice", "certificate of origin"}, c.RequiredDocuments())
		assert.Equal(t, []string{"commercial invoice", "certificate of origin"}, c.SubmittedDocuments())
	})

	t.Run("should allow requesting documents from the initial hold", func(t *testing.T) {
		c := validCase(t)

		require.NoError(t, c.RequestDocuments([]string{"commercial invoice"}))
		assert.Equal(t, customs.DocumentsRequired, c.SubStatus())
	})

	t.Run("should reject an empty document list", func(t *testing.T) {
		c := pendingCase(t)

		require.Error(t, c.RequestDocuments(nil))
	})

	t.Run("should reject submission when none were requested", func(t *testing.T) {
		c := pendingCase(t)

		err := c.SubmitDocuments([]string{"commercial invoice"})

		require.ErrorIs(t, err, customs.ErrWorkflowViolation)
	})
}

func TestCase_RecordInspection(t *testing.T) {
	t.Run("should return to pending when inspection passes", func(t *testing.T) {
		c := pendingCase(t)

		require.NoError(t, c.RecordInspection(true, "contents match declaration"))

		done, passed := c.InspectionRecorded()
		assert.True(t, done)
		assert.True(t, passed)
		assert.Equal(t, customs.Pending, c.SubStatus())
		assert.Equal(t, "contents match declaration", c.InspectionNotes())
	})

	t.Run("should hold the case when inspection fails", func(t *testing.T) {
		c := pendingCase(t)

		require.NoError(t, c.RecordInspection(false, "undeclared items found"))

		done, passed := c.InspectionRecorded()
		assert.True(t, done)
		assert.False(t, passed)
		assert.Equal(t, customs.Held, c.SubStatus())
	})

	t.Run("should reject inspection while documents are outstanding", func(t *testing.T) {
		c := pendingCase(t)
		require.NoError(t, c.RequestDocuments([]string{"commercial invoice"}))

		err := c.RecordInspection(true, "")

		require.ErrorIs(t, err, customs.ErrWorkflowViolation)
	})
}

func TestCase_DutyWorkflow(t *testing.T) {
	t.Run("should move to duty required on assessment", func(t *testing.T) {
		c := pendingCase(t)

		require.NoError(t, c.AssessDuty(decimal.NewFromInt(100), decimal.NewFromInt(20)))

		assert.Equal(t, customs.DutyRequired, c.SubStatus())
		assert.True(t, c.TotalDue().Equal(decimal.NewFromInt(120)))
		assert.True(t, c.OutstandingDuty().Equal(decimal.NewFromInt(120)))
	})

	t.Run("should accumulate partial payments and clear on reaching the total", func(t *testing.T) {
		c := pendingCase(t)
		require.NoError(t, c.AssessDuty(decimal.NewFromInt(100), decimal.NewFromInt(20)))

		require.NoError(t, c.RecordDutyPayment(decimal.NewFromInt(50)))
		assert.Equal(t, customs.DutyRequired, c.SubStatus())
		assert.True(t, c.OutstandingDuty().Equal(decimal.NewFromInt(70)))

		require.NoError(t, c.RecordDutyPayment(decimal.NewFromInt(70)))
		assert.Equal(t, customs.Pending, c.SubStatus())
		assert.True(t, c.DutyPaid().Equal(decimal.NewFromInt(120)))
		assert.True(t, c.OutstandingDuty().Equal(decimal.Zero))
	})

	t.Run("should reject negative assessment", func(t *testing.T) {
		c := pendingCase(t)

		require.Error(t, c.AssessDuty(decimal.NewFromInt(-1), decimal.NewFromInt(20)))
	})

	t.Run("should reject a zero-total assessment", func(t *testing.T) {
		c := pendingCase(t)

		require.Error(t, c.AssessDuty(decimal.Zero, decimal.Zero))
	})

	t.Run("should reject non-positive payment", func(t *testing.T) {
		c := pendingCase(t)
		require.NoError(t, c.AssessDuty(decimal.NewFromInt(10), decimal.Zero))

		require.Error(t, c.RecordDutyPayment(decimal.Zero))
	})

	t.Run("should reject payment before assessment", func(t *testing.T) {
		c := pendingCase(t)

		err := c.RecordDutyPayment(decimal.NewFromInt(10))

		require.ErrorIs(t, err, customs.ErrWorkflowViolation)
	})
}

func TestCase_Clear(t *testing.T) {
	t.Run("should clear a pending case and close it", func(t *testing.T) {
		c := pendingCase(t)

		require.NoError(t, c.Clear("CLR-2026-0042"))

		assert.Equal(t, customs.Cleared, c.SubStatus())
		assert.Equal(t, "CLR-2026-0042", c.ClearanceNumber())
		assert.False(t, c.IsOpen())
		assert.NotNil(t, c.ClosedAt())
	})

	t.Run("should reject clearing without a clearance number", func(t *testing.T) {
		c := pendingCase(t)

		require.Error(t, c.Clear(""))
	})

	t.Run("should reject clearing while duty is outstanding", func(t *testing.T) {
		c := pendingCase(t)
		require.NoError(t, c.AssessDuty(decimal.NewFromInt(100), decimal.NewFromInt(20)))
		require.NoError(t, c.RecordDutyPayment(decimal.NewFromInt(50)))

		err := c.Clear("CLR-2026-0042")

		require.ErrorIs(t, err, customs.ErrWorkflowViolation)
	})

	t.Run("should reject clearing from the initial hold", func(t *testing.T) {
		c := validCase(t)

		err := c.Clear("CLR-2026-0042")

		require.ErrorIs(t, err, customs.ErrWorkflowViolation)
	})
}

func TestCase_Reject(t *testing.T) {
	t.Run("should reject from any open state with a reason", func(t *testing.T) {
		c := pendingCase(t)
		require.NoError(t, c.RequestDocuments([]string{"commercial invoice"}))

		require.NoError(t, c.Reject("documents never provided"))

		assert.Equal(t, customs.Rejected, c.SubStatus())
		assert.Equal(t, "documents never provided", c.RejectionReason())
		assert.False(t, c.IsOpen())
	})

	t.Run("should require a reason", func(t *testing.T) {
		c := pendingCase(t)

		require.Error(t, c.Reject(""))
	})
}

func TestCase_ClosedCaseRejectsEverything(t *testing.T) {
	c := pendingCase(t)
	require.NoError(t, c.Clear("CLR-2026-0042"))

	assert.ErrorIs(t, c.ReleaseHold(), customs.ErrWorkflowViolation)
	assert.ErrorIs(t, c.RequestDocuments([]string{"x"}), customs.ErrWorkflowViolation)
	assert.ErrorIs(t, c.SubmitDocuments([]string{"x"}), customs.ErrWorkflowViolation)
	assert.ErrorIs(t, c.RecordInspection(true, ""), customs.ErrWorkflowViolation)
	assert.ErrorIs(t, c.AssessDuty(decimal.NewFromInt(1), decimal.Zero), customs.ErrWorkflowViolation)
	assert.ErrorIs(t, c.RecordDutyPayment(decimal.NewFromInt(1)), customs.ErrWorkflowViolation)
	assert.ErrorIs(t, c.Clear("CLR-2"), customs.ErrWorkflowViolation)
	assert.ErrorIs(t, c.Reject("late"), customs.ErrWorkflowViolation)
}

func TestRestoreCase(t *testing.T) {
	c := pendingCase(t)
	require.NoError(t, c.AssessDuty(decimal.NewFromInt(100), decimal.NewFromInt(20)))
	require.NoError(t, c.RecordDutyPayment(decimal.NewFromInt(50)))

	restored, err := customs.RestoreCase(
		c.ID(), c.ShipmentID(), c.SubStatus(), c.HoldReason(),
		c.RequiredDocuments(), c.SubmittedDocuments(),
		false, false, c.InspectionNotes(),
		c.DutyAssessed(), c.TaxAssessed(), c.DutyPaid(),
		c.ClearanceNumber(), c.RejectionReason(),
		c.OpenedAt(), c.ClosedAt(),
	)

	require.NoError(t, err)
	assert.Equal(t, customs.DutyRequired, restored.SubStatus())
	assert.True(t, restored.OutstandingDuty().Equal(decimal.NewFromInt(70)))
	assert.True(t, restored.IsOpen())
}
