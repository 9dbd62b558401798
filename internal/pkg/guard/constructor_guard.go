// Package guard offers ConstructorGuard, a marker embedded in value objects,
// commands and queries so that a zero value can be told apart from one built
// through its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set by constructors and checked by Validate methods.
//
//	type CreateQuotationCommand struct {
//	    clientName string
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c CreateQuotationCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateQuotationCommandIsNotConstructed)
//	}
//
// The guard is immutable and safe to copy and share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
