package commands

import (
	"errors"

	"autoshop/internal/pkg/guard"
)

var (
	ErrAddCarCommandIsNotConstructed = errors.New(
		"AddCarCommand must be created via NewAddCarCommand constructor",
	)
	ErrUserIDIsInvalid   = errors.New("user id must be greater than 0")
	ErrNameplateRequired = errors.New("nameplate is required")
)

// AddCarCommand represents a request to register a car in a user's garage.
// The nameplate rules (minimum length, per-user uniqueness) are enforced by
// the car logic; the command only checks the request shape.
type AddCarCommand struct { //nolint:recvcheck //using for validation
	userID    int64
	nameplate string

	guard guard.ConstructorGuard
}

// NewAddCarCommand creates a command to add a car for the given user.
func NewAddCarCommand(userID int64, nameplate string) (AddCarCommand, error) {
	cmd := AddCarCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setNameplate(nameplate),
	); err != nil {
		return AddCarCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCarCommand) Validate() error {
	return c.guard.Validate(ErrAddCarCommandIsNotConstructed)
}

// UserID returns the identifier of the car's owner.
func (c AddCarCommand) UserID() int64 {
	return c.userID
}

// Nameplate returns the requested display name of the car.
func (c AddCarCommand) Nameplate() string {
	return c.nameplate
}

func (c *AddCarCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *AddCarCommand) setNameplate(nameplate string) error {
	if nameplate == "" {
		return ErrNameplateRequired
	}

	c.nameplate = nameplate
	return nil
}
