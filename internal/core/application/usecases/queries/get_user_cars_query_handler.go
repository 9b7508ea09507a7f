package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserCarsQueryHandler retrieves a user's cars straight from the database.
type GetUserCarsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserCarsQueryHandler creates a handler for garage list queries.
func NewGetUserCarsQueryHandler(db *gorm.DB) GetUserCarsQueryHandler {
	return GetUserCarsQueryHandler{db: db}
}

// Handle executes the query and returns a page of the user's cars ordered
// by identifier.
func (h GetUserCarsQueryHandler) Handle(
	ctx context.Context,
	query GetUserCarsQuery,
) ([]GetUserCarsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cars := make([]GetUserCarsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			nameplate
		FROM cars
		WHERE user_id = ?
		ORDER BY id
		OFFSET ? LIMIT ?
	`, query.UserID(), query.Offset(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var car GetUserCarsQueryResponse

		if err = rows.Scan(&car.ID, &car.UserID, &car.Nameplate); err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cars, nil
}
