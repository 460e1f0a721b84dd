package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"
)

// FulfillmentRepository persists product-store-warehouse links and answers the distinct
// counts the assignment quotas are judged by.
type FulfillmentRepository interface {
	Add(ctx context.Context, aggregate *fulfillment.Fulfillment) error

	// Delete removes a link by ID, or returns an errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error

	// Exists reports whether the exact triple is already linked.
	Exists(ctx context.Context, productID, storeID int64, warehouseCode kernel.BusinessUnitCode) (bool, error)

	// CountWarehousesForProductAndStore counts distinct warehouses linked to the pair.
	CountWarehousesForProductAndStore(ctx context.Context, productID, storeID int64) (int, error)

	// CountWarehousesForStore counts distinct warehouses linked to the store, any product.
	CountWarehousesForStore(ctx context.Context, storeID int64) (int, error)

	// CountProductsForWarehouse counts distinct products linked to the warehouse.
	CountProductsForWarehouse(ctx context.Context, warehouseCode kernel.BusinessUnitCode) (int, error)
}
