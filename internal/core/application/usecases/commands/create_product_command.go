package commands

import (
	"errors"

	"fulfilment/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents a request to add a product to the catalog. The fields
// are checked by product.NewProduct when the handler builds the entity.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	stock       int

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(name, description string, stock int) CreateProductCommand {
	return CreateProductCommand{
		name:        name,
		description: description,
		stock:       stock,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Description() string {
	return c.description
}

func (c CreateProductCommand) Stock() int {
	return c.stock
}
