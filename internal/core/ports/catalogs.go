package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/core/domain/model/store"
)

// ProductCatalog answers whether a product is known to the service.
type ProductCatalog interface {
	Exists(ctx context.Context, productID int64) (bool, error)
}

// StoreCatalog answers whether a store is known to the service.
type StoreCatalog interface {
	Exists(ctx context.Context, storeID int64) (bool, error)
}

// ProductRepository manages the product catalog.
type ProductRepository interface {
	ProductCatalog

	// Add inserts an unsaved product and assigns it the generated ID. A taken name is
	// errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, productID int64) (*product.Product, error)

	// Delete fails with errs.ErrObjectNotFound for an unknown ID and with
	// errs.ErrValueIsInvalid while fulfillments still reference the product.
	Delete(ctx context.Context, productID int64) error
}

// StoreRepository manages stores. Its error contract matches ProductRepository.
type StoreRepository interface {
	StoreCatalog

	Add(ctx context.Context, aggregate *store.Store) error
	Update(ctx context.Context, aggregate *store.Store) error
	Get(ctx context.Context, storeID int64) (*store.Store, error)
	Delete(ctx context.Context, storeID int64) error
}

// LegacyStoreGateway mirrors store changes into the legacy store manager. It is called
// after the change has committed, so a failure there never undoes the change here.
type LegacyStoreGateway interface {
	CreateStoreOnLegacySystem(ctx context.Context, s *store.Store) error
	UpdateStoreOnLegacySystem(ctx context.Context, s *store.Store) error
}
