package commands

import (
	"errors"

	"fulfilment/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
)

// UpdateProductCommand replaces every field of a stored product.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   int64
	name        string
	description string
	stock       int

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand returns an error when productID is not positive.
func NewUpdateProductCommand(productID int64, name, description string, stock int) (UpdateProductCommand, error) {
	if err := validateCatalogID("productId", productID); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:   productID,
		name:        name,
		description: description,
		stock:       stock,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

func (c UpdateProductCommand) Name() string {
	return c.name
}

func (c UpdateProductCommand) Description() string {
	return c.description
}

func (c UpdateProductCommand) Stock() int {
	return c.stock
}
