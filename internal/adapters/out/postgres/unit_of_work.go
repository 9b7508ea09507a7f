// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The unit of work owns one database transaction per business
// operation, coordinates the repositories bound to it, and tracks pending
// aggregate mutations so they can be flushed to storage before the commit.
//
// Key properties:
//   - The transaction begins when the factory creates the unit of work
//   - Repository writes execute immediately inside the transaction, so
//     later reads in the same scope observe them
//   - In-memory aggregate mutations (ownership transfers, cancellations)
//     are registered by the repositories and written out on Flush/Commit
//   - Commit and Rollback are idempotent; exactly one is effective
//   - A deferred Rollback after Create guarantees no partial writes
//     survive an operation that did not commit
//
// Usage pattern:
//
//	uow, err := factory.Create(ctx)
//	if err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	if err := uow.Flush(ctx); err != nil { // order.ID() is now assigned
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"autoshop/internal/adapters/out/postgres/carrepo"
	"autoshop/internal/adapters/out/postgres/orderitemrepo"
	"autoshop/internal/adapters/out/postgres/orderrepo"
	"autoshop/internal/adapters/out/postgres/userrepo"
	"autoshop/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates unit of work instances over a shared GORM
// connection pool. Each business operation gets a fresh instance with its
// own transaction, isolated from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create opens a new unit of work: the database transaction begins here,
// so a returned instance is always ready for repository operations.
func (f *GormUnitOfWorkFactory) Create(ctx context.Context) (ports.UnitOfWork, error) {
	tx := f.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	return &GormUnitOfWork{tx: tx}, nil
}

// GormUnitOfWork coordinates one database transaction and the pending
// changes registered against it. Repositories obtained from it share the
// transaction and register a flush function for every aggregate they load
// or insert; Flush runs those functions to push in-memory mutations into
// the open transaction.
type GormUnitOfWork struct {
	tx      *gorm.DB
	pending []func(ctx context.Context) error
	done    bool
}

// Flush writes all pending aggregate mutations into the open transaction
// without committing it. Changes remain rollback-able. Returns
// gorm.ErrInvalidTransaction once the scope has ended.
func (uow *GormUnitOfWork) Flush(ctx context.Context) error {
	if uow.done {
		return gorm.ErrInvalidTransaction
	}

	for _, flush := range uow.pending {
		if err := flush(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Commit flushes pending changes and commits the transaction.
// After an effective commit or rollback it is a no-op, so exactly one
// of Commit/Rollback takes effect per scope. A failed commit does not end
// the scope; the deferred Rollback still runs against the transaction.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.done {
		return nil
	}

	if err := uow.Flush(ctx); err != nil {
		return err
	}

	if err := uow.tx.Commit().Error; err != nil {
		return err
	}

	uow.done = true
	return nil
}

// Rollback discards all changes made since the unit of work was created.
// After an effective commit or rollback it is a no-op, which makes it safe
// to schedule with defer as the disposal guarantee.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.done {
		return nil
	}

	uow.done = true
	return uow.tx.Rollback().Error
}

// UserRepository returns a user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.tx)
}

// CarRepository returns a car repository bound to the current transaction.
func (uow *GormUnitOfWork) CarRepository() ports.CarRepository {
	return carrepo.NewGormCarRepository(uow.tx, uow)
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.tx, uow)
}

// OrderItemRepository returns an order item repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderItemRepository() ports.OrderItemRepository {
	return orderitemrepo.NewGormOrderItemRepository(uow.tx, uow)
}

// TrackChange registers a flush function for an aggregate that was loaded or
// inserted within this scope. Repositories call it so that in-memory mutations
// made by the logic layer reach storage on the next Flush or on Commit.
// Flush functions must be idempotent; they may run on every Flush.
func (uow *GormUnitOfWork) TrackChange(flush func(ctx context.Context) error) {
	uow.pending = append(uow.pending, flush)
}
