package warehouse

import (
	"fmt"

	"fulfilment/internal/pkg/errs"
)

// Status is the lifecycle state of a warehouse record.
//
//	Active ──> Archived
//
// Archived is terminal for the record. A business unit code lives on after archiving only
// through replacement, which creates a new Active record.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Active
	Archived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Active:   "Active",
		Archived: "Archived",
	}
}

// Validate rejects Unknown and out-of-range values, such as a corrupt status column.
func (s Status) Validate() error {
	if s != Active && s != Archived {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Archive transitions Active to Archived. Every other state is rejected.
func (s Status) Archive() (Status, error) {
	if s != Active {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to archive", s.String()),
		)
	}
	return Archived, nil
}
