package fulfillment

import (
	"errors"
	"fmt"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
)

var (
	ErrFulfillmentIsNotConstructed = errors.New("Fulfillment must be created via NewFulfillment constructor")
)

// Fulfillment states that a warehouse supplies a product to a store. It is created once,
// never updated, and deleted by ID. The (product, store, warehouse) triple is unique.
type Fulfillment struct {
	id            kernel.UUID
	productID     int64
	storeID       int64
	warehouseCode kernel.BusinessUnitCode

	isConstructed bool
}

// NewFulfillment validates identifiers only. Existence of the product, the store and the
// warehouse, and the assignment quotas, are checked by services.FulfillmentQuotaPolicy.
//
// Example:
//
//	code, _ := kernel.NewBusinessUnitCode("MWH.001")
//	f, err := fulfillment.NewFulfillment(kernel.NewUUID(), 1, 2, code)
func NewFulfillment(
	id kernel.UUID,
	productID int64,
	storeID int64,
	warehouseCode kernel.BusinessUnitCode,
) (*Fulfillment, error) {
	f := &Fulfillment{isConstructed: true}

	if err := errors.Join(
		f.setID(id),
		f.setProductID(productID),
		f.setStoreID(storeID),
		f.setWarehouseCode(warehouseCode),
	); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *Fulfillment) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFulfillmentIsNotConstructed
	}
	return nil
}

func (f *Fulfillment) ID() kernel.UUID {
	return f.id
}

func (f *Fulfillment) ProductID() int64 {
	return f.productID
}

func (f *Fulfillment) StoreID() int64 {
	return f.storeID
}

func (f *Fulfillment) WarehouseCode() kernel.BusinessUnitCode {
	return f.warehouseCode
}

func (f *Fulfillment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Fulfillment) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("%d is not greater than 0", productID))
	}
	f.productID = productID
	return nil
}

func (f *Fulfillment) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("storeId", fmt.Errorf("%d is not greater than 0", storeID))
	}
	f.storeID = storeID
	return nil
}

func (f *Fulfillment) setWarehouseCode(code kernel.BusinessUnitCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	f.warehouseCode = code
	return nil
}
