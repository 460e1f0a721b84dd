package http

import (
	"errors"
	"net/http"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/generated/servers"
	"fulfilment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrIDIsAssignedByService rejects a create request that names its own id.
var ErrIDIsAssignedByService = errs.NewValueIsInvalidErrorWithCause(
	"id", errors.New("id is assigned by the service and must not be set on create"),
)

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.handlers.GetAllProducts.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = servers.Product{Id: p.ID, Name: p.Name, Description: p.Description, Stock: p.Stock}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if body.Id != nil {
		return s.fail(ctx, ErrIDIsAssignedByService)
	}

	cmd := commands.NewCreateProductCommand(deref(body.Name), deref(body.Description), derefInt(body.Stock))

	created, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, productFromAggregate(created))
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productID int64) error {
	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	found, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Product{
		Id:          found.ID,
		Name:        found.Name,
		Description: found.Description,
		Stock:       found.Stock,
	})
}

// UpdateProduct handles PUT /api/v1/products/{productId}. An id in the body is ignored.
func (s *Server) UpdateProduct(ctx echo.Context, productID int64) error {
	var body servers.UpdateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, deref(body.Name), deref(body.Description), derefInt(body.Stock),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, productFromAggregate(updated))
}

// DeleteProduct handles DELETE /api/v1/products/{productId}.
func (s *Server) DeleteProduct(ctx echo.Context, productID int64) error {
	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListStores handles GET /api/v1/stores.
func (s *Server) ListStores(ctx echo.Context) error {
	stores, err := s.handlers.GetAllStores.Handle(ctx.Request().Context(), queries.NewGetAllStoresQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Store, len(stores))
	for i, st := range stores {
		response[i] = servers.Store{Id: st.ID, Name: st.Name, QuantityProductsInStock: st.QuantityProductsInStock}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateStore handles POST /api/v1/stores.
func (s *Server) CreateStore(ctx echo.Context) error {
	var body servers.CreateStoreJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if body.Id != nil {
		return s.fail(ctx, ErrIDIsAssignedByService)
	}

	cmd := commands.NewCreateStoreCommand(deref(body.Name), derefInt(body.QuantityProductsInStock))

	created, err := s.handlers.CreateStore.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, storeFromAggregate(created))
}

// GetStore handles GET /api/v1/stores/{storeId}.
func (s *Server) GetStore(ctx echo.Context, storeID int64) error {
	query, err := queries.NewGetStoreQuery(storeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	found, err := s.handlers.GetStore.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Store{
		Id:                      found.ID,
		Name:                    found.Name,
		QuantityProductsInStock: found.QuantityProductsInStock,
	})
}

// UpdateStore handles PUT /api/v1/stores/{storeId}. Every field is replaced; a missing
// name is rejected.
func (s *Server) UpdateStore(ctx echo.Context, storeID int64) error {
	var body servers.UpdateStoreJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateStoreCommand(storeID, body.Name, body.QuantityProductsInStock)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.updateStore(ctx, cmd)
}

// PatchStore handles PATCH /api/v1/stores/{storeId}. Absent fields keep their value.
func (s *Server) PatchStore(ctx echo.Context, storeID int64) error {
	var body servers.PatchStoreJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPatchStoreCommand(storeID, body.Name, body.QuantityProductsInStock)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.updateStore(ctx, cmd)
}

func (s *Server) updateStore(ctx echo.Context, cmd commands.UpdateStoreCommand) error {
	updated, err := s.handlers.UpdateStore.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, storeFromAggregate(updated))
}

// DeleteStore handles DELETE /api/v1/stores/{storeId}.
func (s *Server) DeleteStore(ctx echo.Context, storeID int64) error {
	cmd, err := commands.NewDeleteStoreCommand(storeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteStore.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func productFromAggregate(p *product.Product) servers.Product {
	return servers.Product{
		Id:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Stock:       p.Stock(),
	}
}

func storeFromAggregate(st *store.Store) servers.Store {
	return servers.Store{
		Id:                      st.ID(),
		Name:                    st.Name(),
		QuantityProductsInStock: st.QuantityProductsInStock(),
	}
}
