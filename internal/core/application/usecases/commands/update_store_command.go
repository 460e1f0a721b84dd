package commands

import (
	"errors"

	"fulfilment/internal/pkg/guard"
)

var (
	ErrUpdateStoreCommandIsNotConstructed = errors.New(
		"UpdateStoreCommand must be created via NewUpdateStoreCommand or NewPatchStoreCommand constructor",
	)
)

// UpdateStoreCommand changes a stored store. Built by NewUpdateStoreCommand it replaces
// every field; built by NewPatchStoreCommand it changes only the fields that were sent.
type UpdateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID                 int64
	name                    *string
	quantityProductsInStock *int
	partial                 bool

	guard guard.ConstructorGuard
}

// NewUpdateStoreCommand builds a full replacement. A nil name is kept so that the handler
// reports it as required; a nil quantity counts as zero.
func NewUpdateStoreCommand(storeID int64, name *string, quantityProductsInStock *int) (UpdateStoreCommand, error) {
	return newUpdateStoreCommand(storeID, name, quantityProductsInStock, false)
}

// NewPatchStoreCommand builds a partial update.
func NewPatchStoreCommand(storeID int64, name *string, quantityProductsInStock *int) (UpdateStoreCommand, error) {
	return newUpdateStoreCommand(storeID, name, quantityProductsInStock, true)
}

func newUpdateStoreCommand(storeID int64, name *string, quantity *int, partial bool) (UpdateStoreCommand, error) {
	if err := validateCatalogID("storeId", storeID); err != nil {
		return UpdateStoreCommand{}, err
	}

	return UpdateStoreCommand{
		storeID:                 storeID,
		name:                    copyString(name),
		quantityProductsInStock: copyInt(quantity),
		partial:                 partial,
		guard:                   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c UpdateStoreCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreCommandIsNotConstructed)
}

func (c UpdateStoreCommand) StoreID() int64 {
	return c.storeID
}

func (c UpdateStoreCommand) Name() *string {
	return copyString(c.name)
}

func (c UpdateStoreCommand) QuantityProductsInStock() *int {
	return copyInt(c.quantityProductsInStock)
}

func (c UpdateStoreCommand) IsPartial() bool {
	return c.partial
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
