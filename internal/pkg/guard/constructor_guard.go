package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation error
// is supplied, so that validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. Embedding a guard in a struct makes
// zero-value instances detectable: the internal flag is only set by
// NewConstructorGuard, so any struct built without its constructor fails Validate.
//
// Example:
//
//	type Command struct {
//	    payload string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCommand(payload string) (Command, error) {
//	    if payload == "" {
//	        return Command{}, errors.New("payload is required")
//	    }
//	    return Command{payload: payload, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Command) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns nil for constructed objects, the provided error for zero values, or
// ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
