package commands

import (
	"errors"

	"fulfilment/internal/pkg/guard"
)

var (
	ErrCreateStoreCommandIsNotConstructed = errors.New(
		"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
	)
)

// CreateStoreCommand represents a request to open a store. The fields are checked by
// store.NewStore when the handler builds the entity.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	name                    string
	quantityProductsInStock int

	guard guard.ConstructorGuard
}

func NewCreateStoreCommand(name string, quantityProductsInStock int) CreateStoreCommand {
	return CreateStoreCommand{
		name:                    name,
		quantityProductsInStock: quantityProductsInStock,
		guard:                   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

func (c CreateStoreCommand) Name() string {
	return c.name
}

func (c CreateStoreCommand) QuantityProductsInStock() int {
	return c.quantityProductsInStock
}
