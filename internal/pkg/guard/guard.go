// Package guard provides ConstructorGuard, a marker that distinguishes values created
// through their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero value
// and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into commands, queries and aggregates. Only
// NewConstructorGuard produces a guard that validates; a zero value never does.
//
// Example:
//
//	var ErrPlaceOrderCommandIsNotConstructed = errors.New("PlaceOrderCommand must be created via NewPlaceOrderCommand")
//
//	type PlaceOrderCommand struct {
//	    customerID string
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
