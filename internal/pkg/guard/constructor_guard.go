// Package guard provides a defensive programming pattern to ensure domain
// objects are created through their constructors rather than as zero values.
//
// A ConstructorGuard is embedded as a private field in a value object or
// aggregate. Constructors initialize it via NewConstructorGuard; the object's
// Validate method delegates to the guard, which rejects any instance whose
// guard was never initialized (i.e. the struct was built directly).
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not created via its constructor and no custom error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value represents an unconstructed object and fails validation.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard marking its owner as properly constructed.
// Call this inside every constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the guarded object was properly constructed.
// For zero-value guards it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
