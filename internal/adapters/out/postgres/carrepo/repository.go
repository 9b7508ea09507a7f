// Package carrepo implements the car repository port on PostgreSQL via GORM.
package carrepo

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/car"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.CarRepository = &GormCarRepository{}

// changeTracker is the slice of the unit of work the repository needs:
// registering flush functions for aggregates loaded or inserted in the scope.
type changeTracker interface {
	TrackChange(flush func(ctx context.Context) error)
}

// GormCarRepository persists Car aggregates within a unit of work transaction.
// Every aggregate that passes through it is registered with the change
// tracker, so in-memory mutations such as ownership transfers are written
// out when the scope flushes.
type GormCarRepository struct {
	tx      *gorm.DB
	tracker changeTracker
}

// NewGormCarRepository creates a car repository bound to the given transaction.
func NewGormCarRepository(tx *gorm.DB, tracker changeTracker) *GormCarRepository {
	return &GormCarRepository{tx: tx, tracker: tracker}
}

// Add inserts the car immediately; the database generates the identifier,
// which is assigned back to the aggregate.
func (r *GormCarRepository) Add(ctx context.Context, aggregate *car.Car) error {
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

// Get loads a car by identifier. Returns errs.ObjectNotFoundError when no
// car exists with the given identifier.
func (r *GormCarRepository) Get(ctx context.Context, carID int64) (*car.Car, error) {
	var dto CarDTO

	result := r.tx.WithContext(ctx).First(&dto, "id = ?", carID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carID", carID)
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

// ListByUser returns all cars owned by the given user, ordered by identifier.
func (r *GormCarRepository) ListByUser(ctx context.Context, userID int64) ([]*car.Car, error) {
	var dtos []CarDTO

	result := r.tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&dtos)
	if result.Error != nil {
		return nil, result.Error
	}

	cars := make([]*car.Car, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		r.track(aggregate)
		cars = append(cars, aggregate)
	}

	return cars, nil
}

func (r *GormCarRepository) track(aggregate *car.Car) {
	r.tracker.TrackChange(func(ctx context.Context) error {
		dto := fromDomain(aggregate)
		return r.tx.WithContext(ctx).Save(&dto).Error
	})
}
