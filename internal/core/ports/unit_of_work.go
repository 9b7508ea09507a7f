package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per business operation.
// Create opens the underlying database transaction immediately, so a
// successfully created unit of work is always ready for repository calls.
type UnitOfWorkFactory interface {
	Create(ctx context.Context) (UnitOfWork, error)
}

// UnitOfWork is the transaction scope bounding one business operation.
// It exclusively owns one database transaction for its lifetime and hands
// out repositories bound to that transaction.
//
// Lifecycle contract:
//   - The transaction begins when the factory creates the unit of work.
//   - Flush persists pending in-memory aggregate mutations without ending
//     the transaction; it is how generated identifiers become available
//     mid-operation (an order id before its items are written).
//   - Commit flushes remaining changes and ends the transaction. Rollback
//     discards everything since creation. Both are idempotent: after either
//     has taken effect, further Commit/Rollback calls are no-ops, so exactly
//     one of them is effective per scope.
//   - Callers schedule `defer uow.Rollback(ctx)` right after Create; on any
//     exit path that did not commit, the deferred rollback guarantees no
//     partial writes outlive the scope.
//
// A UnitOfWork must never be shared across concurrently executing
// operations; concurrent requests each create their own.
type UnitOfWork interface {
	// Flush persists all pending mutations to storage while keeping the
	// transaction open. Returns an error once the scope has ended.
	Flush(ctx context.Context) error

	// Commit flushes pending changes and commits the transaction.
	// A second call after an effective commit or rollback is a no-op.
	Commit(ctx context.Context) error

	// Rollback discards all changes made within the scope.
	// A second call after an effective commit or rollback is a no-op.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// CarRepository returns a CarRepository bound to the current transaction.
	CarRepository() CarRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// OrderItemRepository returns an OrderItemRepository bound to the current transaction.
	OrderItemRepository() OrderItemRepository
}
