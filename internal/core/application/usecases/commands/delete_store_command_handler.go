package commands

import (
	"context"

	"fulfilment/internal/core/ports"
)

// DeleteStoreCommandHandler closes stores. Like products, a store that fulfillments link to
// is kept and the command fails with errs.ErrValueIsInvalid. The store key serializes the
// delete with fulfillment creation for the same store.
type DeleteStoreCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteStoreCommandHandler(uowFactory CatalogUoWFactory) DeleteStoreCommandHandler {
	return DeleteStoreCommandHandler{uowFactory: uowFactory}
}

func (h DeleteStoreCommandHandler) Handle(ctx context.Context, command DeleteStoreCommand) error {
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

	if err := uow.Lock(ctx, ports.StoreLockKey(command.StoreID())); err != nil {
		return err
	}

	if err := uow.StoreRepository().Delete(ctx, command.StoreID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
