package commands_test

import (
	"context"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) GetActiveByCode(
	ctx context.Context,
	code kernel.BusinessUnitCode,
) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, code)
	w, _ := args.Get(0).(*warehouse.Warehouse)
	return w, args.Error(1)
}

func (m *MockWarehouseRepository) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	ws, _ := args.Get(0).([]*warehouse.Warehouse)
	return ws, args.Error(1)
}

func (m *MockWarehouseRepository) GetAllActiveAtLocation(
	ctx context.Context,
	loc string,
) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx, loc)
	ws, _ := args.Get(0).([]*warehouse.Warehouse)
	return ws, args.Error(1)
}

type MockFulfillmentRepository struct{ mock.Mock }

func (m *MockFulfillmentRepository) Add(ctx context.Context, f *fulfillment.Fulfillment) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFulfillmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFulfillmentRepository) Exists(
	ctx context.Context,
	productID, storeID int64,
	code kernel.BusinessUnitCode,
) (bool, error) {
	args := m.Called(ctx, productID, storeID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockFulfillmentRepository) CountWarehousesForProductAndStore(
	ctx context.Context,
	productID, storeID int64,
) (int, error) {
	args := m.Called(ctx, productID, storeID)
	return args.Int(0), args.Error(1)
}

func (m *MockFulfillmentRepository) CountWarehousesForStore(ctx context.Context, storeID int64) (int, error) {
	args := m.Called(ctx, storeID)
	return args.Int(0), args.Error(1)
}

func (m *MockFulfillmentRepository) CountProductsForWarehouse(
	ctx context.Context,
	code kernel.BusinessUnitCode,
) (int, error) {
	args := m.Called(ctx, code)
	return args.Int(0), args.Error(1)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockLocationDirectory struct{ mock.Mock }

func (m *MockLocationDirectory) Resolve(identifier string) location.Location {
	args := m.Called(identifier)
	return args.Get(0).(location.Location)
}

func (m *MockLocationDirectory) All() []location.Location {
	args := m.Called()
	return args.Get(0).([]location.Location)
}

type MockCacheEvictor struct{ mock.Mock }

func (m *MockCacheEvictor) Evict(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Lock(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

type MockWarehouseUoW struct{ MockTx }

func (m *MockWarehouseUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockFulfillmentUoW struct{ MockTx }

func (m *MockFulfillmentUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockFulfillmentUoW) FulfillmentRepository() ports.FulfillmentRepository {
	args := m.Called()
	return args.Get(0).(ports.FulfillmentRepository)
}

func (m *MockFulfillmentUoW) ProductCatalog() ports.ProductCatalog {
	args := m.Called()
	return args.Get(0).(ports.ProductCatalog)
}

func (m *MockFulfillmentUoW) StoreCatalog() ports.StoreCatalog {
	args := m.Called()
	return args.Get(0).(ports.StoreCatalog)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockProductRepository struct{ MockCatalog }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStoreRepository struct{ MockCatalog }

func (m *MockStoreRepository) Add(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, id int64) (*store.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*store.Store)
	return s, args.Error(1)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLegacyStoreGateway struct{ mock.Mock }

func (m *MockLegacyStoreGateway) CreateStoreOnLegacySystem(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockLegacyStoreGateway) UpdateStoreOnLegacySystem(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockCatalogUoW struct{ MockTx }

func (m *MockCatalogUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockCatalogUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}
