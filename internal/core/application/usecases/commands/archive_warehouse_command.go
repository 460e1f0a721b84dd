package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrArchiveWarehouseCommandIsNotConstructed = errors.New(
		"ArchiveWarehouseCommand must be created via NewArchiveWarehouseCommand constructor",
	)
)

// ArchiveWarehouseCommand represents a request to retire the active record of a warehouse.
type ArchiveWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode kernel.BusinessUnitCode

	guard guard.ConstructorGuard
}

// NewArchiveWarehouseCommand creates an archive command for a business unit code.
func NewArchiveWarehouseCommand(businessUnitCode string) (ArchiveWarehouseCommand, error) {
	code, err := kernel.NewBusinessUnitCode(businessUnitCode)
	if err != nil {
		return ArchiveWarehouseCommand{}, err
	}

	return ArchiveWarehouseCommand{
		businessUnitCode: code,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrArchiveWarehouseCommandIsNotConstructed)
}

func (c ArchiveWarehouseCommand) BusinessUnitCode() kernel.BusinessUnitCode {
	return c.businessUnitCode
}
