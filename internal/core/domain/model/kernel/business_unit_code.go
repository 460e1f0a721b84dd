package kernel

import (
	"errors"
	"strings"

	"fulfilment/internal/pkg/errs"
)

var (
	ErrBusinessUnitCodeIsRequired = errs.NewValueIsRequiredError("businessUnitCode")
	ErrBusinessUnitCodeIsTooLong  = errs.NewValueIsInvalidErrorWithCause(
		"businessUnitCode", errors.New("code is longer than 64 characters"),
	)
)

// MaxBusinessUnitCodeLength matches the width of the business_unit_code columns.
const MaxBusinessUnitCodeLength = 64

// BusinessUnitCode is the stable external identifier of a warehouse. It survives replacement
// and is shared by every record, active or archived, of the same logical warehouse.
//
// Surrounding whitespace is not part of the code:
//
//	code, _ := kernel.NewBusinessUnitCode("  MWH.001 ")
//	code.String() // "MWH.001"
type BusinessUnitCode struct {
	value string
}

// NewBusinessUnitCode trims raw and rejects blank or overlong values.
func NewBusinessUnitCode(raw string) (BusinessUnitCode, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return BusinessUnitCode{}, ErrBusinessUnitCodeIsRequired
	}
	if len(value) > MaxBusinessUnitCodeLength {
		return BusinessUnitCode{}, ErrBusinessUnitCodeIsTooLong
	}
	return BusinessUnitCode{value: value}, nil
}

func (c BusinessUnitCode) String() string {
	return c.value
}

func (c BusinessUnitCode) IsEqual(other BusinessUnitCode) bool {
	return c.value == other.value
}

// Validate rejects the zero value.
func (c BusinessUnitCode) Validate() error {
	if c.value == "" {
		return ErrBusinessUnitCodeIsRequired
	}
	return nil
}
