package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction a command runs in. Locks taken through Lock are held
// until Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// Lock serializes the rest of the transaction with every other transaction holding any
	// of the same keys. Keys are taken in sorted order, so callers need not order them.
	Lock(ctx context.Context, keys ...string) error

	WarehouseRepository() WarehouseRepository
	FulfillmentRepository() FulfillmentRepository
	ProductCatalog() ProductCatalog
	StoreCatalog() StoreCatalog
	ProductRepository() ProductRepository
	StoreRepository() StoreRepository
}
