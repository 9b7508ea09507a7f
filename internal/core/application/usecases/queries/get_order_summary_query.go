// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Most queries go straight to the database with raw SQL; the order summary
// is the exception, it is a business projection computed by the order logic.
package queries

import (
	"errors"

	"autoshop/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderSummaryQuery retrieves the composite summary of one order: the
// order itself, its owner's email and garage size, and the line count.
type GetOrderSummaryQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for the given order.
func NewGetOrderSummaryQuery(orderID int64) (GetOrderSummaryQuery, error) {
	q := GetOrderSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to summarize.
func (q GetOrderSummaryQuery) OrderID() int64 {
	return q.orderID
}

func (q *GetOrderSummaryQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	q.orderID = orderID
	return nil
}
