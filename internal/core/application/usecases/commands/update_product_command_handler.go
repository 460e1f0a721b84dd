package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/core/ports"
)

// UpdateProductCommandHandler replaces the fields of an existing product. An unknown ID
// fails with errs.ErrObjectNotFound.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, command UpdateProductCommand) (*product.Product, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.Lock(ctx, ports.ProductLockKey(command.ProductID())); err != nil {
		return nil, err
	}

	repo := uow.ProductRepository()
	current, err := repo.Get(ctx, command.ProductID())
	if err != nil {
		return nil, err
	}

	if err = current.Update(command.Name(), command.Description(), command.Stock()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
