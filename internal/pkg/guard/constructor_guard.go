// Package guard provides the ConstructorGuard used by commands and aggregates to
// reject zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in a struct,
// set it with NewConstructorGuard in the constructor and check it in Validate:
//
//	type ChangePaymentStatusCommand struct {
//	    orderID kernel.UUID
//	    code    string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ChangePaymentStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
//	}
//
// The zero value is "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError falls back to ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
