// Package car holds the Car entity and its invariants: a car always belongs
// to a user, its nameplate is at least three characters long, and a user may
// not own two cars whose nameplates differ only in case. The per-user
// uniqueness spans the whole garage, so it is enforced by the car logic, not
// here; HasNameplate provides the case-insensitive comparison it needs.
package car

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"autoshop/internal/pkg/errs"
)

// MinNameplateLength is the minimum number of characters in a nameplate,
// counted after trimming surrounding whitespace.
const MinNameplateLength = 3

// ErrCarIsNotConstructed is returned when a Car instance was not created
// through the NewCar or RestoreCar factory methods.
var ErrCarIsNotConstructed = errors.New("Car must be created via NewCar or RestoreCar constructor")

// Car represents a vehicle owned by a user. Ownership is mutable through
// TransferTo; the identifier is assigned by storage on insert.
type Car struct {
	id        int64
	userID    int64
	nameplate string

	isConstructed bool
}

// NewCar creates a Car for the given owner with a validated nameplate.
// The identifier stays zero until the repository persists the car and
// calls AssignID with the database-generated value.
func NewCar(userID int64, nameplate string) (*Car, error) {
	c := &Car{isConstructed: true}

	if err := errors.Join(
		c.setUserID(userID),
		c.setNameplate(nameplate),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCar rehydrates a Car from persistence.
func RestoreCar(id, userID int64, nameplate string) (*Car, error) {
	c, err := NewCar(userID, nameplate)
	if err != nil {
		return nil, err
	}
	if err = c.AssignID(id); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Car instance was properly constructed.
func (c *Car) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarIsNotConstructed
	}
	return nil
}

// ID returns the car's identifier, or 0 if the car has not been persisted yet.
func (c *Car) ID() int64 {
	return c.id
}

// OwnerID returns the identifier of the owning user.
func (c *Car) OwnerID() int64 {
	return c.userID
}

// Nameplate returns the car's display name.
func (c *Car) Nameplate() string {
	return c.nameplate
}

// HasNameplate reports whether the car's nameplate equals the given one,
// compared case-insensitively.
func (c *Car) HasNameplate(nameplate string) bool {
	return strings.EqualFold(c.nameplate, strings.TrimSpace(nameplate))
}

// IsOwnedBy reports whether the car currently belongs to the given user.
func (c *Car) IsOwnedBy(userID int64) bool {
	return c.userID == userID
}

// TransferTo reassigns the car to a new owner. The change is in-memory only;
// it reaches storage when the enclosing transaction scope flushes or commits.
func (c *Car) TransferTo(toUserID int64) error {
	if toUserID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("toUserId",
			fmt.Errorf("%d is not a positive identifier", toUserID))
	}

	c.userID = toUserID
	return nil
}

// AssignID records the storage-generated identifier after insert.
// It can be called once; reassigning an identifier is a programming error.
func (c *Car) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("carId",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if c.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("carId",
			fmt.Errorf("car already has identifier %d", c.id))
	}

	c.id = id
	return nil
}

func (c *Car) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userId",
			fmt.Errorf("%d is not a positive identifier", userID))
	}
	c.userID = userID
	return nil
}

func (c *Car) setNameplate(nameplate string) error {
	trimmed := strings.TrimSpace(nameplate)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("nameplate")
	}
	if utf8.RuneCountInString(trimmed) < MinNameplateLength {
		return errs.NewValueIsInvalidErrorWithCause("nameplate",
			fmt.Errorf("%q is shorter than %d characters", trimmed, MinNameplateLength))
	}

	c.nameplate = trimmed
	return nil
}
