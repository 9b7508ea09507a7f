package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a user's orders straight from the
// database, excluding soft-deleted rows.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order list queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query and returns a page of the user's live orders,
// newest first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			order_date,
			status,
			total_amount
		FROM orders
		WHERE user_id = ? AND deleted = false
		ORDER BY order_date DESC
		OFFSET ? LIMIT ?
	`, query.UserID(), query.Offset(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order GetUserOrdersQueryResponse

		err = rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.OrderDate,
			&order.Status,
			&order.TotalAmount,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
