package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fulfilment/internal/adapters/out/locationdirectory"
	postgres_adapter "fulfilment/internal/adapters/out/postgres"
	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/pgtest"

	"github.com/stretchr/testify/suite"
)

type funcWarehouseUoWFactory func() commands.WarehouseUoW

func (f funcWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) code(raw string) kernel.BusinessUnitCode {
	code, err := kernel.NewBusinessUnitCode(raw)
	suite.Require().NoError(err)
	return code
}

func (suite *UnitOfWorkIntegrationTestSuite) newWarehouse(code, loc string, capacity, stock int) *warehouse.Warehouse {
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), suite.code(code), loc, capacity, stock, time.Now().UTC())
	suite.Require().NoError(err)
	return w
}

func (suite *UnitOfWorkIntegrationTestSuite) countActive(loc string) int64 {
	var count int64
	suite.Require().NoError(suite.database.DB.
		Table("warehouses").
		Where("location = ? AND archived_at IS NULL", loc).
		Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIndependentInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.WarehouseRepository())
	suite.NotNil(uow1.FulfillmentRepository())
	suite.NotNil(uow1.ProductCatalog())
	suite.NotNil(uow1.StoreCatalog())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
	suite.Require().Error(uow.Lock(ctx, "warehouse:MWH.001"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	w := suite.newWarehouse("MWH.001", "ZWOLLE-001", 40, 10)
	link, err := fulfillment.NewFulfillment(kernel.NewUUID(), 1, 1, suite.code("MWH.001"))
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.WarehouseRepository().Add(ctx, w))
	suite.Require().NoError(uow.FulfillmentRepository().Add(ctx, link))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	got, err := reader.WarehouseRepository().GetActiveByCode(ctx, suite.code("MWH.001"))
	suite.Require().NoError(err)
	suite.True(got.IsEqual(w))

	exists, err := reader.FulfillmentRepository().Exists(ctx, 1, 1, suite.code("MWH.001"))
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.WarehouseRepository().Add(ctx, suite.newWarehouse("MWH.001", "ZWOLLE-001", 40, 10)))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().WarehouseRepository().GetActiveByCode(ctx, suite.code("MWH.001"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLock_BlocksUntilHolderCommits() {
	ctx := context.Background()
	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	suite.Require().NoError(holder.Lock(ctx, ports.LocationLockKey("ZWOLLE-001"), ports.WarehouseLockKey("MWH.001")))

	acquired := make(chan time.Time, 1)
	go func() {
		waiter := suite.factory.Create()
		if err := waiter.Begin(ctx); err != nil {
			close(acquired)
			return
		}
		defer func() { _ = waiter.Rollback(ctx) }()

		if err := waiter.Lock(ctx, ports.LocationLockKey("ZWOLLE-001")); err != nil {
			close(acquired)
			return
		}
		acquired <- time.Now()
	}()

	select {
	case <-acquired:
		suite.Fail("lock granted while another transaction holds it")
	case <-time.After(300 * time.Millisecond):
	}

	released := time.Now()
	suite.Require().NoError(holder.Commit(ctx))

	select {
	case at, ok := <-acquired:
		suite.Require().True(ok, "waiter failed to take the lock")
		suite.False(at.Before(released))
	case <-time.After(5 * time.Second):
		suite.Fail("lock not granted after the holder committed")
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentCreates_DoNotOvershootLocationQuota() {
	ctx := context.Background()
	handler := commands.NewCreateWarehouseCommandHandler(
		funcWarehouseUoWFactory(func() commands.WarehouseUoW { return suite.factory.Create() }),
		locationdirectory.NewDefaultDirectory(),
		func() time.Time { return time.Now().UTC() },
	)

	const attempts = 6
	codes := []string{"MWH.101", "MWH.102", "MWH.103", "MWH.104", "MWH.105", "MWH.106"}
	results := make([]error, attempts)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			capacity, stock := 10, 0
			cmd, err := commands.NewCreateWarehouseCommand(codes[i], "ZWOLLE-001", &capacity, &stock)
			if err != nil {
				results[i] = err
				return
			}
			<-start
			_, results[i] = handler.Handle(ctx, cmd)
		}()
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, services.ErrLocationWarehouseQuotaExceeded)
	}

	suite.Equal(1, succeeded)
	suite.Equal(int64(1), suite.countActive("ZWOLLE-001"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentCreates_SameCodeOnlyOnce() {
	ctx := context.Background()
	handler := commands.NewCreateWarehouseCommandHandler(
		funcWarehouseUoWFactory(func() commands.WarehouseUoW { return suite.factory.Create() }),
		locationdirectory.NewDefaultDirectory(),
		func() time.Time { return time.Now().UTC() },
	)

	const attempts = 4
	results := make([]error, attempts)

	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			capacity, stock := 10, 0
			cmd, err := commands.NewCreateWarehouseCommand("MWH.200", "AMSTERDAM-001", &capacity, &stock)
			if err != nil {
				results[i] = err
				return
			}
			_, results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
	}

	suite.Equal(1, succeeded)
	suite.Equal(int64(1), suite.countActive("AMSTERDAM-001"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsCatalogInsert() {
	ctx := context.Background()
	p, err := product.NewProduct("HEMNES", "", 1)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	suite.Require().NoError(uow.Rollback(ctx))

	exists, err := suite.factory.Create().ProductRepository().Exists(ctx, p.ID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
