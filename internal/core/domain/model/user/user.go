// Package user holds the User entity. Users are owned by an external identity
// system: this core only reads them, never creates or deletes them, so the
// package exposes a restore constructor and accessors only.
package user

import (
	"errors"
	"fmt"

	"autoshop/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the RestoreUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser constructor")

// User represents a registered account that owns cars and places orders.
type User struct {
	id    int64
	email string

	isConstructed bool
}

// RestoreUser rehydrates a User from persistence.
func RestoreUser(id int64, email string) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("userId",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return &User{
		id:            id,
		email:         email,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed through RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's identifier.
func (u *User) ID() int64 {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}
