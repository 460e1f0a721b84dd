// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, locking,
// the ordered checks of a domain policy, and persistence.
package commands

import (
	"context"
	"math"
	"time"

	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// Locker takes transaction-scoped locks so that quota checks on the same key are
	// linearized.
	Locker interface {
		Lock(ctx context.Context, keys ...string) error
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// FulfillmentRepoFactory provides access to the fulfillment repository within a transaction.
	FulfillmentRepoFactory interface {
		FulfillmentRepository() ports.FulfillmentRepository
	}

	// CatalogFactory provides the product and store catalogs within a transaction.
	CatalogFactory interface {
		ProductCatalog() ports.ProductCatalog
		StoreCatalog() ports.StoreCatalog
	}

	// WarehouseUoW manages transactions for warehouse lifecycle operations.
	WarehouseUoW interface {
		TxManager
		Locker
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// FulfillmentUoW manages transactions for fulfillment operations, which read warehouses
	// and catalogs besides the fulfillments they write.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.Lock(ctx, ports.StoreLockKey(storeID))
	//   exists, err := uow.ProductCatalog().Exists(ctx, productID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	FulfillmentUoW interface {
		TxManager
		Locker
		WarehouseRepoFactory
		FulfillmentRepoFactory
		CatalogFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// CatalogUoW manages transactions for product and store maintenance.
	CatalogUoW interface {
		TxManager
		Locker
		ProductRepository() ports.ProductRepository
		StoreRepository() ports.StoreRepository
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)

// Clock supplies the instants stamped on created and archived warehouses.
type Clock func() time.Time

// CacheEvictor drops stale read models once a command has committed.
type CacheEvictor interface {
	Evict(ctx context.Context, businessUnitCode string) error
}

func validateCatalogID(paramName string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError(paramName, id, 1, int64(math.MaxInt64))
	}
	return nil
}
