package cmd

import (
	"log/slog"
	"time"

	httpadapter "fulfilment/internal/adapters/in/http"
	"fulfilment/internal/adapters/out/legacystore"
	"fulfilment/internal/adapters/out/locationdirectory"
	"fulfilment/internal/adapters/out/postgres"
	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	directory  ports.LocationDirectory
	cache      ports.WarehouseCache
	legacy     ports.LegacyStoreGateway
	logger     *slog.Logger
	now        commands.Clock
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, cache ports.WarehouseCache, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  locationdirectory.NewDefaultDirectory(),
		cache:      cache,
		legacy:     legacystore.NewGateway(logger),
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (c *CompositionRoot) warehouseUoWFactory() commands.WarehouseUoWFactory {
	return FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fulfillmentUoWFactory() commands.FulfillmentUoWFactory {
	return FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	return commands.NewCreateWarehouseCommandHandler(c.warehouseUoWFactory(), c.directory, c.now)
}

func (c *CompositionRoot) CreateReplaceWarehouseCommandHandler() commands.ReplaceWarehouseCommandHandler {
	return commands.NewReplaceWarehouseCommandHandler(c.warehouseUoWFactory(), c.directory, c.cache, c.now)
}

func (c *CompositionRoot) CreateArchiveWarehouseCommandHandler() commands.ArchiveWarehouseCommandHandler {
	return commands.NewArchiveWarehouseCommandHandler(c.warehouseUoWFactory(), c.cache, c.now)
}

func (c *CompositionRoot) CreateCreateFulfillmentCommandHandler() commands.CreateFulfillmentCommandHandler {
	return commands.NewCreateFulfillmentCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateDeleteFulfillmentCommandHandler() commands.DeleteFulfillmentCommandHandler {
	return commands.NewDeleteFulfillmentCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	return commands.NewCreateStoreCommandHandler(c.catalogUoWFactory(), c.legacy)
}

func (c *CompositionRoot) CreateUpdateStoreCommandHandler() commands.UpdateStoreCommandHandler {
	return commands.NewUpdateStoreCommandHandler(c.catalogUoWFactory(), c.legacy)
}

func (c *CompositionRoot) CreateDeleteStoreCommandHandler() commands.DeleteStoreCommandHandler {
	return commands.NewDeleteStoreCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateGetWarehouseQueryHandler() queries.GetWarehouseQueryHandler {
	return queries.NewGetWarehouseQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetAllWarehousesQueryHandler() queries.GetAllWarehousesQueryHandler {
	// Outside Begin the repository reads from the pool.
	return queries.NewGetAllWarehousesQueryHandler(c.uowFactory.Create().WarehouseRepository())
}

func (c *CompositionRoot) CreateGetAllFulfillmentsQueryHandler() queries.GetAllFulfillmentsQueryHandler {
	return queries.NewGetAllFulfillmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLocationUtilizationQueryHandler() queries.GetLocationUtilizationQueryHandler {
	return queries.NewGetLocationUtilizationQueryHandler(c.gormDB, c.directory)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreQueryHandler() queries.GetStoreQueryHandler {
	return queries.NewGetStoreQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllStoresQueryHandler() queries.GetAllStoresQueryHandler {
	return queries.NewGetAllStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateWarehouse:        c.CreateCreateWarehouseCommandHandler(),
		ReplaceWarehouse:       c.CreateReplaceWarehouseCommandHandler(),
		ArchiveWarehouse:       c.CreateArchiveWarehouseCommandHandler(),
		GetWarehouse:           c.CreateGetWarehouseQueryHandler(),
		GetAllWarehouses:       c.CreateGetAllWarehousesQueryHandler(),
		CreateFulfillment:      c.CreateCreateFulfillmentCommandHandler(),
		DeleteFulfillment:      c.CreateDeleteFulfillmentCommandHandler(),
		GetAllFulfillments:     c.CreateGetAllFulfillmentsQueryHandler(),
		GetLocationUtilization: c.CreateGetLocationUtilizationQueryHandler(),
		CreateProduct:          c.CreateCreateProductCommandHandler(),
		UpdateProduct:          c.CreateUpdateProductCommandHandler(),
		DeleteProduct:          c.CreateDeleteProductCommandHandler(),
		GetProduct:             c.CreateGetProductQueryHandler(),
		GetAllProducts:         c.CreateGetAllProductsQueryHandler(),
		CreateStore:            c.CreateCreateStoreCommandHandler(),
		UpdateStore:            c.CreateUpdateStoreCommandHandler(),
		DeleteStore:            c.CreateDeleteStoreCommandHandler(),
		GetStore:               c.CreateGetStoreQueryHandler(),
		GetAllStores:           c.CreateGetAllStoresQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetLocationUtilizationQueryHandler(), c.config.CapacityReportSchedule, c.logger)
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
