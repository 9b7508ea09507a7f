package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllUsersQueryHandler retrieves users straight from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetAllUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllUsersQueryHandler creates a handler for user list queries.
func NewGetAllUsersQueryHandler(db *gorm.DB) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{db: db}
}

// Handle executes the query and returns a page of users ordered by identifier.
func (h GetAllUsersQueryHandler) Handle(
	ctx context.Context,
	query GetAllUsersQuery,
) ([]GetAllUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]GetAllUsersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email
		FROM users
		ORDER BY id
		OFFSET ? LIMIT ?
	`, query.Offset(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user GetAllUsersQueryResponse

		if err = rows.Scan(&user.ID, &user.Email); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
