// Package userrepo implements the user repository port on PostgreSQL via GORM.
// Users are managed outside of this service, so the repository only reads.
package userrepo

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/user"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.UserRepository = &GormUserRepository{}

// GormUserRepository provides read access to users within a unit of work
// transaction.
type GormUserRepository struct {
	tx *gorm.DB
}

// NewGormUserRepository creates a user repository bound to the given transaction.
func NewGormUserRepository(tx *gorm.DB) *GormUserRepository {
	return &GormUserRepository{tx: tx}
}

// Get loads a user by identifier. Returns errs.ObjectNotFoundError when no
// user exists with the given identifier.
func (r *GormUserRepository) Get(ctx context.Context, userID int64) (*user.User, error) {
	var dto UserDTO

	result := r.tx.WithContext(ctx).First(&dto, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userID", userID)
		}
		return nil, result.Error
	}

	return toDomain(dto)
}

// ListAll returns a page of users ordered by identifier.
func (r *GormUserRepository) ListAll(ctx context.Context, offset int, limit int) ([]*user.User, error) {
	var dtos []UserDTO

	result := r.tx.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&dtos)
	if result.Error != nil {
		return nil, result.Error
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, aggregate)
	}

	return users, nil
}
