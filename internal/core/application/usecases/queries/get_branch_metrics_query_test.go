package queries_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetBranchMetricsQuery_Valid(t *testing.T) {
	branchID := kernel.NewUUID()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewGetBranchMetricsQuery(branchID, from, to, services.Weekly)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.BranchID().IsEqual(branchID))
	assert.Equal(t, services.Weekly, query.Granularity())
}

func TestNewGetBranchMetricsQuery_InvalidBranchID(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetBranchMetricsQuery(kernel.UUID{}, from, to, services.Daily)
	require.Error(t, err)
}

func TestNewGetBranchMetricsQuery_InvalidGranularity(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetBranchMetricsQuery(kernel.NewUUID(), from, to, services.GranularityUnknown)
	require.Error(t, err)
}

func TestNewGetBranchMetricsQuery_EmptyRange(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetBranchMetricsQuery(kernel.NewUUID(), from, from, services.Daily)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrDateRangeIsInvalid)
}

func TestGetBranchMetricsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetBranchMetricsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetBranchMetricsQueryIsNotConstructed)
}
