package ports

import (
	"context"

	"autoshop/internal/core/domain/model/order"
)

// OrderItemRepository defines the persistence contract for order line items.
// Every read transparently excludes soft-deleted rows.
type OrderItemRepository interface {
	// Add persists a new item and assigns its generated identifier.
	// The item must reference an order that already has its identifier,
	// which is what the unit of work's Flush makes possible.
	Add(ctx context.Context, aggregate *order.Item) error

	// Get retrieves an item by identifier, excluding soft-deleted items.
	// Returns an ObjectNotFoundError if no visible item exists.
	Get(ctx context.Context, id int64) (*order.Item, error)

	// ListByOrder retrieves the visible items of the given order.
	ListByOrder(ctx context.Context, orderID int64) ([]*order.Item, error)
}
