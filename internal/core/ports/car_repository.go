package ports

import (
	"context"

	"autoshop/internal/core/domain/model/car"
)

// CarRepository defines the persistence contract for cars.
// A repository never opens or closes a transaction; it works strictly inside
// the unit of work it was obtained from. Writes hit storage immediately, so
// later reads in the same scope observe them, but they stay rollback-able
// until the scope commits.
type CarRepository interface {
	// Add persists a new car and assigns its generated identifier.
	Add(ctx context.Context, aggregate *car.Car) error

	// Get retrieves a car by identifier.
	// Returns an ObjectNotFoundError if no such car exists.
	Get(ctx context.Context, id int64) (*car.Car, error)

	// ListByUser retrieves all cars owned by the given user.
	ListByUser(ctx context.Context, userID int64) ([]*car.Car, error)
}
