package queries

import (
	"errors"
	"time"

	"autoshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
)

// GetUserOrdersQuery retrieves a page of one user's orders, newest first.
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	userID int64
	offset int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a paginated query over the user's orders.
func NewGetUserOrdersQuery(userID int64, offset, limit int) (GetUserOrdersQuery, error) {
	q := GetUserOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setUserID(userID),
		q.setOffset(offset),
		q.setLimit(limit),
	); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the orders' owner.
func (q GetUserOrdersQuery) UserID() int64 {
	return q.userID
}

// Offset returns how many orders to skip.
func (q GetUserOrdersQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q GetUserOrdersQuery) Limit() int {
	return q.limit
}

func (q *GetUserOrdersQuery) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	q.userID = userID
	return nil
}

func (q *GetUserOrdersQuery) setOffset(offset int) error {
	if offset < 0 {
		return ErrOffsetIsInvalid
	}

	q.offset = offset
	return nil
}

func (q *GetUserOrdersQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}

// GetUserOrdersQueryResponse represents one order in the read model.
type GetUserOrdersQueryResponse struct {
	ID          int64
	OrderNumber string
	OrderDate   time.Time
	Status      string
	TotalAmount decimal.Decimal
}
