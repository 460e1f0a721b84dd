package commands

import (
	"errors"
	"strings"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrReplaceWarehouseCommandIsNotConstructed = errors.New(
		"ReplaceWarehouseCommand must be created via NewReplaceWarehouseCommand constructor",
	)
)

// ReplaceWarehouseCommand represents a request to move or resize an active warehouse while
// keeping its business unit code. The replacement payload may carry a code of its own; it
// is only used for the duplicate check, the stored code is always the addressed one.
//
// Example:
//
//	capacity, stock := 60, 10
//	cmd, err := NewReplaceWarehouseCommand("MWH.001", "", "AMSTERDAM-001", &capacity, &stock)
type ReplaceWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode kernel.BusinessUnitCode
	payloadCode      kernel.BusinessUnitCode
	location         string
	capacity         *int
	stock            *int

	guard guard.ConstructorGuard
}

// NewReplaceWarehouseCommand creates a replace command. businessUnitCode addresses the
// warehouse and is required; payloadCode may be blank.
func NewReplaceWarehouseCommand(
	businessUnitCode string,
	payloadCode string,
	location string,
	capacity *int,
	stock *int,
) (ReplaceWarehouseCommand, error) {
	command := ReplaceWarehouseCommand{
		location: location,
		capacity: copyInt(capacity),
		stock:    copyInt(stock),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBusinessUnitCode(businessUnitCode),
		command.setPayloadCode(payloadCode),
	); err != nil {
		return ReplaceWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrReplaceWarehouseCommandIsNotConstructed)
}

func (c ReplaceWarehouseCommand) BusinessUnitCode() kernel.BusinessUnitCode {
	return c.businessUnitCode
}

// PayloadCode returns the zero code when the payload carried none.
func (c ReplaceWarehouseCommand) PayloadCode() kernel.BusinessUnitCode {
	return c.payloadCode
}

// ChangesCode reports whether the payload names a code other than the addressed one.
func (c ReplaceWarehouseCommand) ChangesCode() bool {
	return c.payloadCode.Validate() == nil && !c.payloadCode.IsEqual(c.businessUnitCode)
}

// Draft returns the replacement as submitted, carrying the payload code.
func (c ReplaceWarehouseCommand) Draft() services.WarehouseDraft {
	return services.WarehouseDraft{
		BusinessUnitCode: c.payloadCode,
		Location:         c.location,
		Capacity:         copyInt(c.capacity),
		Stock:            copyInt(c.stock),
	}
}

func (c *ReplaceWarehouseCommand) setBusinessUnitCode(raw string) error {
	code, err := kernel.NewBusinessUnitCode(raw)
	if err != nil {
		return err
	}

	c.businessUnitCode = code
	return nil
}

func (c *ReplaceWarehouseCommand) setPayloadCode(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	code, err := kernel.NewBusinessUnitCode(raw)
	if err != nil {
		return err
	}

	c.payloadCode = code
	return nil
}
