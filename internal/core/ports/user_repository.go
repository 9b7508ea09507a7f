package ports

import (
	"context"

	"autoshop/internal/core/domain/model/user"
)

// UserRepository defines read-only persistence access to users.
// Users are never created or deleted by this core.
type UserRepository interface {
	// Get retrieves a user by identifier.
	// Returns an ObjectNotFoundError if no such user exists.
	Get(ctx context.Context, id int64) (*user.User, error)

	// ListAll retrieves users ordered by identifier, paginated.
	ListAll(ctx context.Context, offset, limit int) ([]*user.User, error)
}
