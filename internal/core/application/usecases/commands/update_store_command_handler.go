package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/ports"
)

// UpdateStoreCommandHandler applies full and partial store updates and mirrors the result
// to the legacy store manager after commit. An unknown ID fails with errs.ErrObjectNotFound.
type UpdateStoreCommandHandler struct {
	uowFactory CatalogUoWFactory
	legacy     ports.LegacyStoreGateway
}

func NewUpdateStoreCommandHandler(uowFactory CatalogUoWFactory, legacy ports.LegacyStoreGateway) UpdateStoreCommandHandler {
	return UpdateStoreCommandHandler{
		uowFactory: uowFactory,
		legacy:     legacy,
	}
}

func (h UpdateStoreCommandHandler) Handle(ctx context.Context, command UpdateStoreCommand) (*store.Store, error) {
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

	if err := uow.Lock(ctx, ports.StoreLockKey(command.StoreID())); err != nil {
		return nil, err
	}

	repo := uow.StoreRepository()
	current, err := repo.Get(ctx, command.StoreID())
	if err != nil {
		return nil, err
	}

	if err = applyStoreUpdate(current, command); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.legacy.UpdateStoreOnLegacySystem(ctx, current)

	return current, nil
}

func applyStoreUpdate(s *store.Store, command UpdateStoreCommand) error {
	if command.IsPartial() {
		return s.Patch(command.Name(), command.QuantityProductsInStock())
	}

	var name string
	if n := command.Name(); n != nil {
		name = *n
	}
	var quantity int
	if q := command.QuantityProductsInStock(); q != nil {
		quantity = *q
	}
	return s.Update(name, quantity)
}
