// Package guard holds small helpers that domain types embed to protect their invariants.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tells a value built by its constructor apart from a zero value.
// Domain types embed it and call Validate from their own Validate method.
//
// Example:
//
//	var ErrQuotaIsNotConstructed = errors.New("Quota must be created via NewQuota")
//
//	type Quota struct {
//	    limit int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuota(limit int) (Quota, error) {
//	    if limit < 1 {
//	        return Quota{}, errors.New("limit must be positive")
//	    }
//	    return Quota{limit: limit, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quota) Validate() error {
//	    return q.guard.Validate(ErrQuotaIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the embedding value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero guard it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
