package ports

import (
	"context"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders.
// Every read transparently excludes soft-deleted rows.
type OrderRepository interface {
	// Add persists a new order and assigns its generated identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier, excluding soft-deleted orders.
	// Returns an ObjectNotFoundError if no visible order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// ListByUser retrieves the user's orders, newest first by order date.
	ListByUser(ctx context.Context, userID int64) ([]*order.Order, error)

	// ExistsByNumber reports whether any order with the given order number
	// already exists. Soft-deleted orders keep their number reserved, so
	// they count too.
	ExistsByNumber(ctx context.Context, number kernel.OrderNumber) (bool, error)

	// PurgeDeleted hard-deletes soft-deleted orders older than the given
	// moment and returns how many were removed. Their items go with them
	// via the cascade on the items' foreign key.
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}
