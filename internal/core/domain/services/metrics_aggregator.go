package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Granularity selects the bucketing period for metric aggregation.
type Granularity int

const (
	// GranularityUnknown represents an invalid or undefined granularity.
	GranularityUnknown Granularity = iota

	// Daily buckets facts by calendar day.
	Daily

	// Weekly buckets facts by ISO week (Monday start).
	Weekly

	// Monthly buckets facts by calendar month.
	Monthly
)

// Validate checks if the Granularity value is a member of the enumeration.
func (g Granularity) Validate() error {
	switch g {
	case Daily, Weekly, Monthly:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("granularity is invalid",
			fmt.Errorf("%d is not a valid granularity", g))
	}
}

// String returns the human-readable name of the granularity.
func (g Granularity) String() string {
	switch g {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	default:
		return "Unknown"
	}
}

// GranularityFromName resolves a granularity by its name, case-insensitively.
func GranularityFromName(name string) (Granularity, bool) {
	switch strings.ToLower(name) {
	case "daily":
		return Daily, true
	case "weekly":
		return Weekly, true
	case "monthly":
		return Monthly, true
	default:
		return GranularityUnknown, false
	}
}

// ShipmentFact is one raw fact row consumed by aggregation: the shipment's
// creation and delivery timestamps and its financial outcome. Optional fields
// are pointers; a nil value is excluded from average denominators, never
// treated as zero.
type ShipmentFact struct {
	ShipmentID  kernel.UUID
	BranchID    kernel.UUID
	CreatedAt   time.Time
	DeliveredAt *time.Time
	OnTime      *bool
	Revenue     *decimal.Decimal
	Cost        *decimal.Decimal
}

// MetricsBucket is the aggregate for one period.
type MetricsBucket struct {
	PeriodStart    time.Time
	ShipmentCount  int
	DeliveredCount int
	TotalRevenue   decimal.Decimal
	TotalCost      decimal.Decimal
	Margin         decimal.Decimal

	// AvgDeliveryDuration is nil when the bucket has no delivered shipments.
	AvgDeliveryDuration *time.Duration

	// OnTimeRatePercent is nil when no fact in the bucket carries an
	// on-time flag.
	OnTimeRatePercent *decimal.Decimal
}

// MetricsBundle is the result of one aggregation run.
type MetricsBundle struct {
	BranchID    kernel.UUID
	From        time.Time
	To          time.Time
	Granularity Granularity
	Buckets     []MetricsBucket
}

// MetricsAggregator computes summary metrics from raw shipment facts.
// It is pure: the caller loads the facts (and may cache the bundle keyed on
// its inputs); the aggregator only folds them into buckets. For a fixed fact
// set the result is reproducible.
type MetricsAggregator struct{}

// NewMetricsAggregator creates a metrics aggregator.
func NewMetricsAggregator() MetricsAggregator {
	return MetricsAggregator{}
}

// cancellationCheckStride bounds how many facts are folded between
// context checks during large aggregations.
const cancellationCheckStride = 256

// Aggregate buckets the facts by the requested granularity and computes
// count, sum and average aggregates per bucket.
//
// Facts outside [from, to) or belonging to a different branch are skipped.
// Cancellation is honored: when ctx is done, the partial result is discarded
// and ctx.Err() returned.
func (MetricsAggregator) Aggregate(
	ctx context.Context,
	branchID kernel.UUID,
	from, to time.Time,
	granularity Granularity,
	facts []ShipmentFact,
) (MetricsBundle, error) {
	if err := branchID.Validate(); err != nil {
		return MetricsBundle{}, err
	}
	if err := granularity.Validate(); err != nil {
		return MetricsBundle{}, err
	}
	if !to.After(from) {
		return MetricsBundle{}, errs.NewValueIsInvalidErrorWithCause("date range",
			fmt.Errorf("range end %s is not after start %s", to, from))
	}

	type accumulator struct {
		bucket        MetricsBucket
		durationTotal time.Duration
		durationCount int
		onTimeCount   int
		onTimeSamples int
	}
	accumulators := make(map[time.Time]*accumulator)

	for i, fact := range facts {
		if i%cancellationCheckStride == 0 {
			if err := ctx.Err(); err != nil {
				return MetricsBundle{}, err
			}
		}

		if !fact.BranchID.IsEqual(branchID) {
			continue
		}
		if fact.CreatedAt.Before(from) || !fact.CreatedAt.Before(to) {
			continue
		}

		period := bucketStart(fact.CreatedAt, granularity)
		acc, ok := accumulators[period]
		if !ok {
			acc = &accumulator{bucket: MetricsBucket{
				PeriodStart:  period,
				TotalRevenue: decimal.Zero,
				TotalCost:    decimal.Zero,
				Margin:       decimal.Zero,
			}}
			accumulators[period] = acc
		}

		acc.bucket.ShipmentCount++
		if fact.Revenue != nil {
			acc.bucket.TotalRevenue = acc.bucket.TotalRevenue.Add(*fact.Revenue)
		}
		if fact.Cost != nil {
			acc.bucket.TotalCost = acc.bucket.TotalCost.Add(*fact.Cost)
		}
		if fact.DeliveredAt != nil {
			acc.bucket.DeliveredCount++
			acc.durationTotal += fact.DeliveredAt.Sub(fact.CreatedAt)
			acc.durationCount++
		}
		if fact.OnTime != nil {
			acc.onTimeSamples++
			if *fact.OnTime {
				acc.onTimeCount++
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return MetricsBundle{}, err
	}

	buckets := make([]MetricsBucket, 0, len(accumulators))
	for _, acc := range accumulators {
		acc.bucket.Margin = acc.bucket.TotalRevenue.Sub(acc.bucket.TotalCost)
		if acc.durationCount > 0 {
			avg := acc.durationTotal / time.Duration(acc.durationCount)
			acc.bucket.AvgDeliveryDuration = &avg
		}
		if acc.onTimeSamples > 0 {
			rate := decimal.NewFromInt(int64(acc.onTimeCount)).
				Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(int64(acc.onTimeSamples))).
				Round(2)
			acc.bucket.OnTimeRatePercent = &rate
		}
		buckets = append(buckets, acc.bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].PeriodStart.Before(buckets[j].PeriodStart)
	})

	return MetricsBundle{
		BranchID:    branchID,
		From:        from,
		To:          to,
		Granularity: granularity,
		Buckets:     buckets,
	}, nil
}

func bucketStart(t time.Time, granularity Granularity) time.Time {
	t = t.UTC()
	switch granularity {
	case Weekly:
		day := t.Truncate(24 * time.Hour)
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday belongs to the week that started the previous Monday
		}
		return day.AddDate(0, 0, -(weekday - 1))
	case Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return t.Truncate(24 * time.Hour)
	}
}
