package commands

import (
	"context"

	"fulfilment/internal/core/ports"
)

// DeleteProductCommandHandler removes products. A product that fulfillments still link to
// is kept and the command fails with errs.ErrValueIsInvalid; delete the links first.
//
// The product key is the one CreateFulfillmentCommandHandler takes, so a link cannot be
// added between the reference check and the delete.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, command DeleteProductCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.Lock(ctx, ports.ProductLockKey(command.ProductID())); err != nil {
		return err
	}

	if err := uow.ProductRepository().Delete(ctx, command.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
