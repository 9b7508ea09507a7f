package carrepo

import (
	"autoshop/internal/core/domain/model/car"
)

// CarDTO maps the Car aggregate to the database table.
type CarDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index"`
	Nameplate string `gorm:"type:varchar(100);not null"`
}

// TableName overrides the table name used by GORM.
func (CarDTO) TableName() string {
	return "cars"
}

func fromDomain(aggregate *car.Car) CarDTO {
	return CarDTO{
		ID:        aggregate.ID(),
		UserID:    aggregate.OwnerID(),
		Nameplate: aggregate.Nameplate(),
	}
}

func toDomain(dto CarDTO) (*car.Car, error) {
	return car.RestoreCar(dto.ID, dto.UserID, dto.Nameplate)
}
