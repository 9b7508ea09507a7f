package order_test

import (
	"testing"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/order"
	"autoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrderNumber(t *testing.T) kernel.OrderNumber {
	t.Helper()
	return kernel.NewOrderNumber(time.Now())
}

func TestNewOrder(t *testing.T) {
	number := testOrderNumber(t)
	date := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	o, err := order.NewOrder(1, number, date, decimal.RequireFromString("150.00"))

	require.NoError(t, err)
	require.NoError(t, o.Validate())
	assert.Equal(t, int64(0), o.ID())
	assert.Equal(t, int64(1), o.UserID())
	assert.True(t, o.Number().IsEqual(number))
	assert.Equal(t, date, o.OrderDate())
	assert.Equal(t, order.Pending, o.Status())
	assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("150.00")))
	assert.False(t, o.IsDeleted())
}

func TestNewOrder_Invalid(t *testing.T) {
	number := testOrderNumber(t)

	t.Run("non-positive user", func(t *testing.T) {
		_, err := order.NewOrder(0, number, time.Now(), decimal.NewFromInt(10))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero-value order number", func(t *testing.T) {
		_, err := order.NewOrder(1, kernel.OrderNumber{}, time.Now(), decimal.NewFromInt(10))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-positive total", func(t *testing.T) {
		_, err := order.NewOrder(1, number, time.Now(), decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	number := testOrderNumber(t)

	o, err := order.RestoreOrder(7, 1, number, time.Now(), order.Confirmed, decimal.NewFromInt(99), false)

	require.NoError(t, err)
	assert.Equal(t, int64(7), o.ID())
	assert.Equal(t, order.Confirmed, o.Status())
}

func TestRestoreOrder_InvalidStatus(t *testing.T) {
	_, err := order.RestoreOrder(7, 1, testOrderNumber(t), time.Now(), order.Unknown, decimal.NewFromInt(99), false)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("from Pending", func(t *testing.T) {
		o, err := order.NewOrder(1, testOrderNumber(t), time.Now(), decimal.NewFromInt(10))
		require.NoError(t, err)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("from Confirmed", func(t *testing.T) {
		o, err := order.RestoreOrder(7, 1, testOrderNumber(t), time.Now(), order.Confirmed, decimal.NewFromInt(10), false)
		require.NoError(t, err)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("conflict from Shipped", func(t *testing.T) {
		o, err := order.RestoreOrder(7, 1, testOrderNumber(t), time.Now(), order.Shipped, decimal.NewFromInt(10), false)
		require.NoError(t, err)

		require.ErrorIs(t, o.Cancel(), errs.ErrConflict)
		assert.Equal(t, order.Shipped, o.Status())
	})
}

func TestOrder_BelongsTo(t *testing.T) {
	o, err := order.NewOrder(3, testOrderNumber(t), time.Now(), decimal.NewFromInt(10))
	require.NoError(t, err)

	assert.True(t, o.BelongsTo(3))
	assert.False(t, o.BelongsTo(4))
}

func TestOrder_AssignID(t *testing.T) {
	o, err := order.NewOrder(1, testOrderNumber(t), time.Now(), decimal.NewFromInt(10))
	require.NoError(t, err)

	require.NoError(t, o.AssignID(12))
	assert.Equal(t, int64(12), o.ID())

	require.ErrorIs(t, o.AssignID(13), errs.ErrValueIsInvalid)
}
