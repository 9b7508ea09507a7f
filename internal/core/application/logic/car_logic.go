package logic

import (
	"context"
	"fmt"

	"autoshop/internal/core/domain/model/car"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"
)

// CarScope is the slice of the unit of work CarLogic needs.
// ports.UnitOfWork satisfies it.
type CarScope interface {
	UserRepository() ports.UserRepository
	CarRepository() ports.CarRepository
}

// CarLogic enforces the garage invariants: cars belong to existing users and
// a user's nameplates are unique, compared case-insensitively.
type CarLogic interface {
	// AddCarWithValidation creates a car for the user after checking the
	// user exists and the nameplate is valid and not already taken in the
	// user's garage.
	AddCarWithValidation(ctx context.Context, userID int64, nameplate string) (*car.Car, error)

	// TransferCarOwnership reassigns a car from one user to another.
	// Fails with a conflict when fromUserID is not the current owner.
	// The mutation is in-memory until the scope flushes or commits.
	TransferCarOwnership(ctx context.Context, carID, fromUserID, toUserID int64) error

	// GetUserCarCount returns how many cars the user owns. An unknown
	// user simply owns zero cars; no existence check is performed.
	GetUserCarCount(ctx context.Context, userID int64) (int, error)
}

var _ CarLogic = &carLogic{}

type carLogic struct {
	scope CarScope
}

// NewCarLogic creates a CarLogic bound to the given scope.
func NewCarLogic(scope CarScope) CarLogic {
	return &carLogic{scope: scope}
}

func (l *carLogic) AddCarWithValidation(ctx context.Context, userID int64, nameplate string) (*car.Car, error) {
	if _, err := l.scope.UserRepository().Get(ctx, userID); err != nil {
		return nil, err
	}

	aggregate, err := car.NewCar(userID, nameplate)
	if err != nil {
		return nil, err
	}

	owned, err := l.scope.CarRepository().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, existing := range owned {
		if existing.HasNameplate(nameplate) {
			return nil, errs.NewConflictErrorWithCause("nameplate",
				fmt.Errorf("user %d already owns a car named %q", userID, existing.Nameplate()))
		}
	}

	if err := l.scope.CarRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (l *carLogic) TransferCarOwnership(ctx context.Context, carID, fromUserID, toUserID int64) error {
	users := l.scope.UserRepository()
	if _, err := users.Get(ctx, fromUserID); err != nil {
		return err
	}
	if _, err := users.Get(ctx, toUserID); err != nil {
		return err
	}

	aggregate, err := l.scope.CarRepository().Get(ctx, carID)
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(fromUserID) {
		return errs.NewConflictErrorWithCause("fromUserId",
			fmt.Errorf("car %d is not owned by user %d", carID, fromUserID))
	}

	return aggregate.TransferTo(toUserID)
}

func (l *carLogic) GetUserCarCount(ctx context.Context, userID int64) (int, error) {
	owned, err := l.scope.CarRepository().ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	return len(owned), nil
}
