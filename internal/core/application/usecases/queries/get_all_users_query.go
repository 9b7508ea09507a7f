package queries

import (
	"errors"

	"autoshop/internal/pkg/guard"
)

var (
	ErrGetAllUsersQueryIsNotConstructed = errors.New(
		"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
	)
	ErrOffsetIsInvalid = errors.New("offset must not be negative")
	ErrLimitIsInvalid  = errors.New("limit must be greater than 0")
)

// GetAllUsersQuery retrieves a page of registered users.
type GetAllUsersQuery struct { //nolint:recvcheck //using for validation
	offset int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetAllUsersQuery creates a paginated query over all users.
func NewGetAllUsersQuery(offset, limit int) (GetAllUsersQuery, error) {
	q := GetAllUsersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOffset(offset),
		q.setLimit(limit),
	); err != nil {
		return GetAllUsersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}

// Offset returns how many users to skip.
func (q GetAllUsersQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q GetAllUsersQuery) Limit() int {
	return q.limit
}

func (q *GetAllUsersQuery) setOffset(offset int) error {
	if offset < 0 {
		return ErrOffsetIsInvalid
	}

	q.offset = offset
	return nil
}

func (q *GetAllUsersQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}

// GetAllUsersQueryResponse represents one user in the read model.
type GetAllUsersQueryResponse struct {
	ID    int64
	Email string
}
