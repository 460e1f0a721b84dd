package services

import (
	"fmt"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
)

const (
	MaxWarehousesPerProductAndStore = 2
	MaxWarehousesPerStore           = 3
	MaxProductsPerWarehouse         = 5
)

var (
	ErrProductStoreWarehouseQuotaExceeded = errs.NewQuotaExceededError(
		"warehousesPerProductAndStore", MaxWarehousesPerProductAndStore,
	)
	ErrStoreWarehouseQuotaExceeded = errs.NewQuotaExceededError(
		"warehousesPerStore", MaxWarehousesPerStore,
	)
	ErrWarehouseProductQuotaExceeded = errs.NewQuotaExceededError(
		"productsPerWarehouse", MaxProductsPerWarehouse,
	)
)

// Assignment is the link a caller wants to add, with the counts it is judged by. Counts are
// taken before insertion and are distinct counts.
type Assignment struct {
	ProductID     int64
	StoreID       int64
	WarehouseCode kernel.BusinessUnitCode

	// AlreadyLinked is set when the exact triple is already stored.
	AlreadyLinked bool

	WarehousesForProductAndStore int
	WarehousesForStore           int
	ProductsForWarehouse         int
}

// FulfillmentQuotaPolicy enforces how widely products, stores and warehouses may be linked:
// at most 2 warehouses per product and store, 3 warehouses per store and 5 products per
// warehouse. The existence of the product, the store and the warehouse is the caller's check.
type FulfillmentQuotaPolicy struct{}

func NewFulfillmentQuotaPolicy() FulfillmentQuotaPolicy {
	return FulfillmentQuotaPolicy{}
}

// Check returns the first violated rule, in this order: duplicate triple, product and store
// quota, store quota, warehouse quota.
func (p FulfillmentQuotaPolicy) Check(a Assignment) error {
	if a.AlreadyLinked {
		return errs.NewObjectAlreadyExistsError(
			"fulfillment",
			fmt.Sprintf("product %d, store %d, warehouse %s", a.ProductID, a.StoreID, a.WarehouseCode),
		)
	}

	if a.WarehousesForProductAndStore >= MaxWarehousesPerProductAndStore {
		return ErrProductStoreWarehouseQuotaExceeded
	}

	if a.WarehousesForStore >= MaxWarehousesPerStore {
		return ErrStoreWarehouseQuotaExceeded
	}

	if a.ProductsForWarehouse >= MaxProductsPerWarehouse {
		return ErrWarehouseProductQuotaExceeded
	}

	return nil
}
