package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds products to the catalog. A name already in the catalog
// fails with errs.ErrObjectAlreadyExists from the repository.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

// Handle returns the saved product with its generated ID.
func (h CreateProductCommandHandler) Handle(ctx context.Context, command CreateProductCommand) (*product.Product, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	created, err := product.NewProduct(command.Name(), command.Description(), command.Stock())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
