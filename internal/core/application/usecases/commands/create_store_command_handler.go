package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/ports"
)

// CreateStoreCommandHandler opens stores and mirrors each new store to the legacy store
// manager once it has committed. The legacy call's outcome does not change the result.
//
// Example:
//
//	handler := NewCreateStoreCommandHandler(uowFactory, legacyGateway)
//	s, err := handler.Handle(ctx, NewCreateStoreCommand("Store A", 10))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s.ID())
type CreateStoreCommandHandler struct {
	uowFactory CatalogUoWFactory
	legacy     ports.LegacyStoreGateway
}

func NewCreateStoreCommandHandler(uowFactory CatalogUoWFactory, legacy ports.LegacyStoreGateway) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
		legacy:     legacy,
	}
}

func (h CreateStoreCommandHandler) Handle(ctx context.Context, command CreateStoreCommand) (*store.Store, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	created, err := store.NewStore(command.Name(), command.QuantityProductsInStock())
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

	if err = uow.StoreRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.legacy.CreateStoreOnLegacySystem(ctx, created)

	return created, nil
}
