package location

import (
	"fmt"
	"strings"

	"fulfilment/internal/pkg/errs"
)

var (
	ErrIdentificationIsRequired = errs.NewValueIsRequiredError("identification")
)

// Location is a named capacity domain. It limits how many active warehouses may sit in it
// and how much capacity they may hold in total.
//
// The zero value is the "unknown location" sentinel returned by directories for identifiers
// they do not know: empty identification and both maxima 0.
type Location struct {
	identification        string
	maxNumberOfWarehouses int
	maxCapacity           int
}

// Unknown returns the sentinel for unresolved identifiers.
func Unknown() Location {
	return Location{}
}

// NewLocation validates a directory entry.
//
// Example:
//
//	zwolle, err := location.NewLocation("ZWOLLE-001", 1, 40)
func NewLocation(identification string, maxNumberOfWarehouses, maxCapacity int) (Location, error) {
	identification = strings.TrimSpace(identification)
	if identification == "" {
		return Location{}, ErrIdentificationIsRequired
	}
	if maxNumberOfWarehouses < 0 {
		return Location{}, errs.NewValueIsInvalidErrorWithCause(
			"maxNumberOfWarehouses", fmt.Errorf("%d is negative", maxNumberOfWarehouses),
		)
	}
	if maxCapacity < 0 {
		return Location{}, errs.NewValueIsInvalidErrorWithCause(
			"maxCapacity", fmt.Errorf("%d is negative", maxCapacity),
		)
	}

	return Location{
		identification:        identification,
		maxNumberOfWarehouses: maxNumberOfWarehouses,
		maxCapacity:           maxCapacity,
	}, nil
}

func (l Location) Identification() string {
	return l.identification
}

func (l Location) MaxNumberOfWarehouses() int {
	return l.maxNumberOfWarehouses
}

func (l Location) MaxCapacity() int {
	return l.maxCapacity
}

// IsUnknown reports whether l is the sentinel.
func (l Location) IsUnknown() bool {
	return l.identification == ""
}
