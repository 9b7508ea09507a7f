// Package orderitemrepo implements the order item repository port on
// PostgreSQL via GORM.
package orderitemrepo

import (
	"context"
	"errors"

	"autoshop/internal/adapters/out/postgres/softdelete"
	"autoshop/internal/core/domain/model/order"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.OrderItemRepository = &GormOrderItemRepository{}

// changeTracker is the slice of the unit of work the repository needs:
// registering flush functions for aggregates loaded or inserted in the scope.
type changeTracker interface {
	TrackChange(flush func(ctx context.Context) error)
}

// GormOrderItemRepository persists order line items within a unit of work
// transaction. Reads exclude soft-deleted rows.
type GormOrderItemRepository struct {
	tx      *gorm.DB
	tracker changeTracker
}

// NewGormOrderItemRepository creates an order item repository bound to the
// given transaction.
func NewGormOrderItemRepository(tx *gorm.DB, tracker changeTracker) *GormOrderItemRepository {
	return &GormOrderItemRepository{tx: tx, tracker: tracker}
}

// Add inserts the item immediately; the database generates the identifier,
// which is assigned back to the item. The owning order must already be
// persisted, so callers flush the scope before adding lines.
func (r *GormOrderItemRepository) Add(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)

	result := r.tx.WithContext(ctx).Create(&dto)
	if result.Error != nil {
		return result.Error
	}

	if err := item.AssignID(dto.ID); err != nil {
		return err
	}

	r.track(item)
	return nil
}

// Get loads an item by identifier, excluding soft-deleted rows. Returns
// errs.ObjectNotFoundError when no live item exists with the given identifier.
func (r *GormOrderItemRepository) Get(ctx context.Context, itemID int64) (*order.Item, error) {
	var dto OrderItemDTO

	result := r.tx.WithContext(ctx).
		Scopes(softdelete.Excluded).
		First(&dto, "id = ?", itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderItemID", itemID)
		}
		return nil, result.Error
	}

	item, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.track(item)
	return item, nil
}

// ListByOrder returns the live line items of the given order, ordered by identifier.
func (r *GormOrderItemRepository) ListByOrder(ctx context.Context, orderID int64) ([]*order.Item, error) {
	var dtos []OrderItemDTO

	result := r.tx.WithContext(ctx).
		Scopes(softdelete.Excluded).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&dtos)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		r.track(item)
		items = append(items, item)
	}

	return items, nil
}

func (r *GormOrderItemRepository) track(item *order.Item) {
	r.tracker.TrackChange(func(ctx context.Context) error {
		dto := fromDomain(item)
		return r.tx.WithContext(ctx).Save(&dto).Error
	})
}
