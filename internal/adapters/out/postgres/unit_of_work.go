// Package postgres provides the GORM-based Unit of Work the fulfilment commands run in.
//
// A unit of work wraps one database transaction. Repositories obtained from it after Begin
// share that transaction, so the reads a command judges by and the writes it makes commit
// or roll back together.
//
// Serialization:
//
// Quota checks read aggregate state (counts, summed capacities) and then write. Under READ
// COMMITTED two such transactions could both pass the check and both commit. Lock takes
// transaction-scoped advisory locks, one per key, so commands sharing a key run one after
// the other:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.Lock(ctx, ports.WarehouseLockKey("MWH.001"), ports.LocationLockKey("ZWOLLE-001")); err != nil {
//	    return err
//	}
//	// read, check, write
//	return uow.Commit(ctx)
//
// The locks are released by Commit or Rollback. Keys are taken in sorted order, so two
// commands asking for overlapping key sets cannot deadlock on each other.
package postgres

import (
	"context"
	"slices"

	"fulfilment/internal/adapters/out/postgres/catalogrepo"
	"fulfilment/internal/adapters/out/postgres/fulfillmentrepo"
	"fulfilment/internal/adapters/out/postgres/warehouserepo"
	"fulfilment/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances. The
// connection should be opened with gorm.Config{TranslateError: true}, otherwise unique
// violations surface as driver errors instead of errs.ObjectAlreadyExistsError.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work. Instances must not be shared between goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}
	return nil
}

// Commit finalizes the transaction and releases its locks.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction and releases its locks. Command handlers defer it
// unconditionally, so after a successful Commit it returns gorm.ErrInvalidTransaction,
// which they ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// Lock takes pg_advisory_xact_lock on the hash of every key, in sorted order, blocking until
// each is granted. Hash collisions only serialize unrelated keys, they never skip a lock.
func (uow *GormUnitOfWork) Lock(ctx context.Context, keys ...string) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	for _, key := range sorted {
		if err := uow.tx.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
			return err
		}
	}

	return nil
}

func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn())
}

func (uow *GormUnitOfWork) FulfillmentRepository() ports.FulfillmentRepository {
	return fulfillmentrepo.NewGormFulfillmentRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProductCatalog() ports.ProductCatalog {
	return uow.ProductRepository()
}

func (uow *GormUnitOfWork) StoreCatalog() ports.StoreCatalog {
	return uow.StoreRepository()
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return catalogrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) StoreRepository() ports.StoreRepository {
	return catalogrepo.NewGormStoreRepository(uow.conn())
}

// conn is the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
