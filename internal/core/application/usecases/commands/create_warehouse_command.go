package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
)

// CreateWarehouseCommand represents a request to open a new warehouse.
// Only the business unit code is checked here. Location, capacity and stock are carried as
// submitted so the placement policy can report them in its own order, which is why
// capacity and stock may be nil.
//
// Example:
//
//	capacity, stock := 40, 10
//	cmd, err := NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", &capacity, &stock)
//	if err != nil {
//	    return fmt.Errorf("invalid warehouse data: %w", err)
//	}
//
//	w, err := handler.Handle(ctx, cmd)
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode kernel.BusinessUnitCode
	location         string
	capacity         *int
	stock            *int

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to register a new warehouse.
// Returns an error when the business unit code is blank.
func NewCreateWarehouseCommand(
	businessUnitCode string,
	location string,
	capacity *int,
	stock *int,
) (CreateWarehouseCommand, error) {
	command := CreateWarehouseCommand{
		location: location,
		capacity: copyInt(capacity),
		stock:    copyInt(stock),
		guard:    guard.NewConstructorGuard(),
	}

	if err := command.setBusinessUnitCode(businessUnitCode); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

func (c CreateWarehouseCommand) BusinessUnitCode() kernel.BusinessUnitCode {
	return c.businessUnitCode
}

// Draft returns the warehouse as submitted, ready for the placement policy.
func (c CreateWarehouseCommand) Draft() services.WarehouseDraft {
	return services.WarehouseDraft{
		BusinessUnitCode: c.businessUnitCode,
		Location:         c.location,
		Capacity:         copyInt(c.capacity),
		Stock:            copyInt(c.stock),
	}
}

func (c *CreateWarehouseCommand) setBusinessUnitCode(raw string) error {
	code, err := kernel.NewBusinessUnitCode(raw)
	if err != nil {
		return err
	}

	c.businessUnitCode = code
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
