package queries

import (
	"errors"

	"autoshop/internal/pkg/guard"
)

var (
	ErrGetUserCarsQueryIsNotConstructed = errors.New(
		"GetUserCarsQuery must be created via NewGetUserCarsQuery constructor",
	)
	ErrUserIDIsInvalid = errors.New("user id must be greater than 0")
)

// GetUserCarsQuery retrieves a page of one user's cars.
type GetUserCarsQuery struct { //nolint:recvcheck //using for validation
	userID int64
	offset int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetUserCarsQuery creates a paginated query over the user's garage.
func NewGetUserCarsQuery(userID int64, offset, limit int) (GetUserCarsQuery, error) {
	q := GetUserCarsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setUserID(userID),
		q.setOffset(offset),
		q.setLimit(limit),
	); err != nil {
		return GetUserCarsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserCarsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserCarsQueryIsNotConstructed)
}

// UserID returns the identifier of the garage owner.
func (q GetUserCarsQuery) UserID() int64 {
	return q.userID
}

// Offset returns how many cars to skip.
func (q GetUserCarsQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q GetUserCarsQuery) Limit() int {
	return q.limit
}

func (q *GetUserCarsQuery) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	q.userID = userID
	return nil
}

func (q *GetUserCarsQuery) setOffset(offset int) error {
	if offset < 0 {
		return ErrOffsetIsInvalid
	}

	q.offset = offset
	return nil
}

func (q *GetUserCarsQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}

// GetUserCarsQueryResponse represents one car in the read model.
type GetUserCarsQueryResponse struct {
	ID        int64
	UserID    int64
	Nameplate string
}
