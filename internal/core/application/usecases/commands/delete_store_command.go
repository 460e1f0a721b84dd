package commands

import (
	"errors"

	"fulfilment/internal/pkg/guard"
)

var (
	ErrDeleteStoreCommandIsNotConstructed = errors.New(
		"DeleteStoreCommand must be created via NewDeleteStoreCommand constructor",
	)
)

// DeleteStoreCommand represents a request to close a store.
type DeleteStoreCommand struct { //nolint:recvcheck //using for validation
	storeID int64

	guard guard.ConstructorGuard
}

func NewDeleteStoreCommand(storeID int64) (DeleteStoreCommand, error) {
	if err := validateCatalogID("storeId", storeID); err != nil {
		return DeleteStoreCommand{}, err
	}

	return DeleteStoreCommand{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStoreCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStoreCommandIsNotConstructed)
}

func (c DeleteStoreCommand) StoreID() int64 {
	return c.storeID
}
