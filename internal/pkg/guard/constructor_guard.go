// Package guard provides a construction check for commands, queries,
// and value objects. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so handlers can reject objects that bypassed their
// constructor and therefore skipped validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the enclosing object went through its
// constructor. The zero value is "not constructed".
//
// Example:
//
//	type CancelShipmentCommand struct {
//	    shipmentID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCancelShipmentCommand(id kernel.UUID) (CancelShipmentCommand, error) {
//	    if err := id.Validate(); err != nil {
//	        return CancelShipmentCommand{}, err
//	    }
//	    return CancelShipmentCommand{shipmentID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c *CancelShipmentCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
