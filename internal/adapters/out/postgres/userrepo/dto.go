package userrepo

import (
	"autoshop/internal/core/domain/model/user"
)

// UserDTO maps users to the database table. Users are seeded externally and
// read-only for this service, so there is no toDTO mapping.
type UserDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName overrides the table name used by GORM.
func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(dto.ID, dto.Email)
}
