package queries_test

import (
	"testing"

	"autoshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderSummaryQuery_Success(t *testing.T) {
	q, err := queries.NewGetOrderSummaryQuery(42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), q.OrderID())
	assert.NoError(t, q.Validate())
}

func TestNewGetOrderSummaryQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderSummaryQuery(0)

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOrderIDIsInvalid)
}

func TestGetOrderSummaryQuery_ValidateNotConstructed(t *testing.T) {
	var q queries.GetOrderSummaryQuery

	err := q.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderSummaryQueryIsNotConstructed)
}
