// Package guard implements the constructor-guard pattern used by commands,
// queries and value objects to ensure they are created through their
// designated constructor functions rather than as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is checked and no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether the enclosing struct was built through its
// constructor. Embed it as a field and set it with NewConstructorGuard inside
// the constructor; a zero-value struct then fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a properly constructed guard.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when nil is passed.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
