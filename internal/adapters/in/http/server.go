package http

import (
	"context"
	"log/slog"
	"net/http"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use case contracts the server depends on. The handlers in the commands and queries
// packages satisfy them.
type (
	CreateWarehouseHandler interface {
		Handle(ctx context.Context, command commands.CreateWarehouseCommand) (*warehouse.Warehouse, error)
	}
	ReplaceWarehouseHandler interface {
		Handle(ctx context.Context, command commands.ReplaceWarehouseCommand) (*warehouse.Warehouse, error)
	}
	ArchiveWarehouseHandler interface {
		Handle(ctx context.Context, command commands.ArchiveWarehouseCommand) error
	}
	CreateFulfillmentHandler interface {
		Handle(ctx context.Context, command commands.CreateFulfillmentCommand) (*fulfillment.Fulfillment, error)
	}
	DeleteFulfillmentHandler interface {
		Handle(ctx context.Context, command commands.DeleteFulfillmentCommand) error
	}
	GetWarehouseHandler interface {
		Handle(ctx context.Context, query queries.GetWarehouseQuery) (queries.WarehouseResponse, error)
	}
	GetAllWarehousesHandler interface {
		Handle(ctx context.Context, query queries.GetAllWarehousesQuery) ([]queries.WarehouseResponse, error)
	}
	GetAllFulfillmentsHandler interface {
		Handle(ctx context.Context, query queries.GetAllFulfillmentsQuery) ([]queries.FulfillmentResponse, error)
	}
	GetLocationUtilizationHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetLocationUtilizationQuery,
		) (queries.LocationUtilizationResponse, error)
	}

	CreateProductHandler interface {
		Handle(ctx context.Context, command commands.CreateProductCommand) (*product.Product, error)
	}
	UpdateProductHandler interface {
		Handle(ctx context.Context, command commands.UpdateProductCommand) (*product.Product, error)
	}
	DeleteProductHandler interface {
		Handle(ctx context.Context, command commands.DeleteProductCommand) error
	}
	GetProductHandler interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (queries.ProductResponse, error)
	}
	GetAllProductsHandler interface {
		Handle(ctx context.Context, query queries.GetAllProductsQuery) ([]queries.ProductResponse, error)
	}

	CreateStoreHandler interface {
		Handle(ctx context.Context, command commands.CreateStoreCommand) (*store.Store, error)
	}
	UpdateStoreHandler interface {
		Handle(ctx context.Context, command commands.UpdateStoreCommand) (*store.Store, error)
	}
	DeleteStoreHandler interface {
		Handle(ctx context.Context, command commands.DeleteStoreCommand) error
	}
	GetStoreHandler interface {
		Handle(ctx context.Context, query queries.GetStoreQuery) (queries.StoreResponse, error)
	}
	GetAllStoresHandler interface {
		Handle(ctx context.Context, query queries.GetAllStoresQuery) ([]queries.StoreResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateWarehouse  CreateWarehouseHandler
	ReplaceWarehouse ReplaceWarehouseHandler
	ArchiveWarehouse ArchiveWarehouseHandler
	GetWarehouse     GetWarehouseHandler
	GetAllWarehouses GetAllWarehousesHandler

	CreateFulfillment  CreateFulfillmentHandler
	DeleteFulfillment  DeleteFulfillmentHandler
	GetAllFulfillments GetAllFulfillmentsHandler

	GetLocationUtilization GetLocationUtilizationHandler

	CreateProduct  CreateProductHandler
	UpdateProduct  UpdateProductHandler
	DeleteProduct  DeleteProductHandler
	GetProduct     GetProductHandler
	GetAllProducts GetAllProductsHandler

	CreateStore  CreateStoreHandler
	UpdateStore  UpdateStoreHandler
	DeleteStore  DeleteStoreHandler
	GetStore     GetStoreHandler
	GetAllStores GetAllStoresHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// ListWarehouses handles GET /api/v1/warehouses.
func (s *Server) ListWarehouses(ctx echo.Context) error {
	warehouses, err := s.handlers.GetAllWarehouses.Handle(ctx.Request().Context(), queries.NewGetAllWarehousesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Warehouse, len(warehouses))
	for i, w := range warehouses {
		response[i] = warehouseFromResponse(w)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateWarehouse handles POST /api/v1/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var body servers.CreateWarehouseJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateWarehouseCommand(
		deref(body.BusinessUnitCode), deref(body.Location), body.Capacity, body.Stock,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateWarehouse.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, warehouseFromAggregate(created))
}

// GetWarehouse handles GET /api/v1/warehouses/{businessUnitCode}.
func (s *Server) GetWarehouse(ctx echo.Context, businessUnitCode servers.BusinessUnitCode) error {
	query, err := queries.NewGetWarehouseQuery(businessUnitCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	found, err := s.handlers.GetWarehouse.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, warehouseFromResponse(found))
}

// ArchiveWarehouse handles DELETE /api/v1/warehouses/{businessUnitCode}.
func (s *Server) ArchiveWarehouse(ctx echo.Context, businessUnitCode servers.BusinessUnitCode) error {
	cmd, err := commands.NewArchiveWarehouseCommand(businessUnitCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.ArchiveWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReplaceWarehouse handles POST /api/v1/warehouses/{businessUnitCode}/replacement.
func (s *Server) ReplaceWarehouse(ctx echo.Context, businessUnitCode servers.BusinessUnitCode) error {
	var body servers.ReplaceWarehouseJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReplaceWarehouseCommand(
		businessUnitCode, deref(body.BusinessUnitCode), deref(body.Location), body.Capacity, body.Stock,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	replaced, err := s.handlers.ReplaceWarehouse.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, warehouseFromAggregate(replaced))
}

// ListFulfillments handles GET /api/v1/fulfillments.
func (s *Server) ListFulfillments(ctx echo.Context) error {
	return s.listFulfillments(ctx, queries.NewGetAllFulfillmentsQuery())
}

// ListFulfillmentsForProduct handles GET /api/v1/products/{productId}/fulfillments.
func (s *Server) ListFulfillmentsForProduct(ctx echo.Context, productID int64) error {
	query, err := queries.NewGetFulfillmentsForProductQuery(productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.listFulfillments(ctx, query)
}

func (s *Server) listFulfillments(ctx echo.Context, query queries.GetAllFulfillmentsQuery) error {
	links, err := s.handlers.GetAllFulfillments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Fulfillment, len(links))
	for i, link := range links {
		response[i] = servers.Fulfillment{
			Id:                        link.ID.Bytes(),
			ProductId:                 link.ProductID,
			StoreId:                   link.StoreID,
			WarehouseBusinessUnitCode: link.WarehouseCode,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateFulfillment handles POST /api/v1/fulfillments.
func (s *Server) CreateFulfillment(ctx echo.Context) error {
	var body servers.CreateFulfillmentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateFulfillmentCommand(body.ProductId, body.StoreId, body.WarehouseBusinessUnitCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.handlers.CreateFulfillment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, servers.Fulfillment{
		Id:                        created.ID().Bytes(),
		ProductId:                 created.ProductID(),
		StoreId:                   created.StoreID(),
		WarehouseBusinessUnitCode: created.WarehouseCode().String(),
	})
}

// DeleteFulfillment handles DELETE /api/v1/fulfillments/{id}.
func (s *Server) DeleteFulfillment(ctx echo.Context, id openapi_types.UUID) error {
	fulfillmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeleteFulfillmentCommand(fulfillmentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteFulfillment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetLocationUtilization handles GET /api/v1/locations/{identification}/utilization.
func (s *Server) GetLocationUtilization(ctx echo.Context, identification string) error {
	query, err := queries.NewGetLocationUtilizationQuery(identification)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	utilization, err := s.handlers.GetLocationUtilization.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.LocationUtilization{
		Identification:        utilization.Identification,
		MaxNumberOfWarehouses: utilization.MaxNumberOfWarehouses,
		MaxCapacity:           utilization.MaxCapacity,
		ActiveWarehouses:      utilization.ActiveWarehouses,
		UsedCapacity:          utilization.UsedCapacity,
	})
}

func warehouseFromAggregate(w *warehouse.Warehouse) servers.Warehouse {
	return servers.Warehouse{
		BusinessUnitCode: w.BusinessUnitCode().String(),
		Location:         w.Location(),
		Capacity:         w.Capacity(),
		Stock:            w.Stock(),
		CreatedAt:        w.CreatedAt(),
	}
}

func warehouseFromResponse(w queries.WarehouseResponse) servers.Warehouse {
	return servers.Warehouse{
		BusinessUnitCode: w.BusinessUnitCode,
		Location:         w.Location,
		Capacity:         w.Capacity,
		Stock:            w.Stock,
		CreatedAt:        w.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
