package commands

import (
	"errors"
	"fmt"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrCreateFulfillmentCommandIsNotConstructed = errors.New(
		"CreateFulfillmentCommand must be created via NewCreateFulfillmentCommand constructor",
	)
)

// CreateFulfillmentCommand represents a request to let a warehouse supply a product to a store.
//
// Example:
//
//	cmd, err := NewCreateFulfillmentCommand(1, 2, "MWH.001")
//	f, err := handler.Handle(ctx, cmd)
type CreateFulfillmentCommand struct { //nolint:recvcheck //using for validation
	productID     int64
	storeID       int64
	warehouseCode kernel.BusinessUnitCode

	guard guard.ConstructorGuard
}

// NewCreateFulfillmentCommand validates identifier shapes. Whether the product, store and
// warehouse exist is decided by the handler.
func NewCreateFulfillmentCommand(productID, storeID int64, warehouseCode string) (CreateFulfillmentCommand, error) {
	command := CreateFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setStoreID(storeID),
		command.setWarehouseCode(warehouseCode),
	); err != nil {
		return CreateFulfillmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateFulfillmentCommandIsNotConstructed)
}

func (c CreateFulfillmentCommand) ProductID() int64 {
	return c.productID
}

func (c CreateFulfillmentCommand) StoreID() int64 {
	return c.storeID
}

func (c CreateFulfillmentCommand) WarehouseCode() kernel.BusinessUnitCode {
	return c.warehouseCode
}

func (c *CreateFulfillmentCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("%d is not greater than 0", productID))
	}

	c.productID = productID
	return nil
}

func (c *CreateFulfillmentCommand) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("storeId", fmt.Errorf("%d is not greater than 0", storeID))
	}

	c.storeID = storeID
	return nil
}

func (c *CreateFulfillmentCommand) setWarehouseCode(raw string) error {
	code, err := kernel.NewBusinessUnitCode(raw)
	if err != nil {
		return err
	}

	c.warehouseCode = code
	return nil
}
