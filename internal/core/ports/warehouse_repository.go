// Package ports defines the contracts between the fulfilment core and its adapters.
// Command handlers depend on these interfaces only, so the rules can be exercised against
// mocks and the storage can change without touching them.
package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/warehouse"
)

// WarehouseRepository persists warehouse records. Only active records are visible to the
// lookups; archived ones stay in storage for history.
type WarehouseRepository interface {
	// Add persists a new record. Adding a second active record for a code fails with an
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing record, such as its archival.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// GetActiveByCode returns the active record for code or an errs.ObjectNotFoundError.
	GetActiveByCode(ctx context.Context, code kernel.BusinessUnitCode) (*warehouse.Warehouse, error)

	// GetAllActive returns every active record ordered by business unit code.
	GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error)

	// GetAllActiveAtLocation returns the active records at a location.
	GetAllActiveAtLocation(ctx context.Context, location string) ([]*warehouse.Warehouse, error)
}
