package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingClearanceQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingClearanceQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetPendingClearanceQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingClearanceQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingClearanceQueryIsNotConstructed)
}
