// Package orderrepo implements the order repository port on PostgreSQL via GORM.
package orderrepo

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/adapters/out/postgres/softdelete"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/order"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.OrderRepository = &GormOrderRepository{}

// changeTracker is the slice of the unit of work the repository needs:
// registering flush functions for aggregates loaded or inserted in the scope.
type changeTracker interface {
	TrackChange(flush func(ctx context.Context) error)
}

// GormOrderRepository persists Order aggregates within a unit of work
// transaction. Reads exclude soft-deleted rows; loaded and inserted orders
// are registered with the change tracker so status transitions made in
// memory are written out when the scope flushes.
type GormOrderRepository struct {
	tx      *gorm.DB
	tracker changeTracker
}

// NewGormOrderRepository creates an order repository bound to the given transaction.
func NewGormOrderRepository(tx *gorm.DB, tracker changeTracker) *GormOrderRepository {
	return &GormOrderRepository{tx: tx, tracker: tracker}
}

// Add inserts the order immediately; the database generates the identifier,
// which is assigned back to the aggregate. The caller flushes the scope when
// it needs the identifier for line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.tx.WithContext(ctx).Create(&dto)
	if result.Error != nil {
		return result.Error
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Get loads an order by identifier, excluding soft-deleted rows. Returns
// errs.ObjectNotFoundError when no live order exists with the given identifier.
func (r *GormOrderRepository) Get(ctx context.Context, orderID int64) (*order.Order, error) {
	var dto OrderDTO

	result := r.tx.WithContext(ctx).
		Scopes(softdelete.Excluded).
		First(&dto, "id = ?", orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID)
		}
		return nil, result.Error
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.track(aggregate)
	return aggregate, nil
}

// ListByUser returns the user's live orders, newest first.
func (r *GormOrderRepository) ListByUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	var dtos []OrderDTO

	result := r.tx.WithContext(ctx).
		Scopes(softdelete.Excluded).
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&dtos)
	if result.Error != nil {
		return nil, result.Error
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		r.track(aggregate)
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// ExistsByNumber reports whether any order, soft-deleted ones included,
// already carries the given order number. Soft-deleted rows keep their
// number reserved, so they count.
func (r *GormOrderRepository) ExistsByNumber(ctx context.Context, number kernel.OrderNumber) (bool, error) {
	var count int64

	result := r.tx.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_number = ?", number.String()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// PurgeDeleted physically removes soft-deleted orders older than the given
// cutoff. The foreign key cascade removes their line items. Returns the
// number of orders removed.
func (r *GormOrderRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	result := r.tx.WithContext(ctx).
		Where("deleted = ? AND order_date < ?", true, before).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	r.tracker.TrackChange(func(ctx context.Context) error {
		dto := fromDomain(aggregate)
		return r.tx.WithContext(ctx).Save(&dto).Error
	})
}
