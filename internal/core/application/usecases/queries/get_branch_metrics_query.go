package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetBranchMetricsQueryIsNotConstructed = errors.New(
		"GetBranchMetricsQuery must be created via NewGetBranchMetricsQuery constructor",
	)
	ErrDateRangeIsInvalid = errors.New("range end must be after range start")
)

// GetBranchMetricsQuery computes shipment metrics for one branch over a date
// range at the requested granularity.
//
// Example:
//
//	query, err := NewGetBranchMetricsQuery(branchID, from, to, services.Weekly)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetBranchMetricsQueryHandler(db)
//	bundle, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute branch metrics: %w", err)
//	}
//	fmt.Printf("%d buckets\n", len(bundle.Buckets))
type GetBranchMetricsQuery struct { //nolint:recvcheck //using for validation
	branchID    kernel.UUID
	from        time.Time
	to          time.Time
	granularity services.Granularity

	guard guard.ConstructorGuard
}

// NewGetBranchMetricsQuery creates a metrics query for a branch and range.
// Validates the branch identifier, the range and the granularity.
func NewGetBranchMetricsQuery(
	branchID kernel.UUID,
	from, to time.Time,
	granularity services.Granularity,
) (GetBranchMetricsQuery, error) {
	if err := errors.Join(
		branchID.Validate(),
		granularity.Validate(),
	); err != nil {
		return GetBranchMetricsQuery{}, err
	}
	if !to.After(from) {
		return GetBranchMetricsQuery{}, ErrDateRangeIsInvalid
	}

	return GetBranchMetricsQuery{
		branchID:    branchID,
		from:        from,
		to:          to,
		granularity: granularity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBranchMetricsQueryIsNotConstructed if validation fails.
func (q GetBranchMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchMetricsQueryIsNotConstructed)
}

// BranchID returns the branch to aggregate for.
func (q GetBranchMetricsQuery) BranchID() kernel.UUID {
	return q.branchID
}

// From returns the inclusive range start.
func (q GetBranchMetricsQuery) From() time.Time {
	return q.from
}

// To returns the exclusive range end.
func (q GetBranchMetricsQuery) To() time.Time {
	return q.to
}

// Granularity returns the bucketing granularity.
func (q GetBranchMetricsQuery) Granularity() services.Granularity {
	return q.granularity
}
