package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/core/ports"
)

// ReplaceWarehouseCommandHandler swaps the active record of a warehouse for a new one with
// the same code. The archival of the old record and the insert of the new one commit
// together, so readers see exactly one active record for the code throughout.
//
// Example:
//
//	handler := NewReplaceWarehouseCommandHandler(uowFactory, directory, cache, time.Now)
//	successor, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrStockMismatch) {
//	    // replacement must carry the current stock
//	}
type ReplaceWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
	reader     placementReader
	policy     services.WarehousePlacementPolicy
	cache      CacheEvictor
	now        Clock
}

// NewReplaceWarehouseCommandHandler creates a handler for warehouse replacement.
// The cache entry of the code is evicted after a successful commit.
func NewReplaceWarehouseCommandHandler(
	uowFactory WarehouseUoWFactory,
	directory ports.LocationDirectory,
	cache CacheEvictor,
	now Clock,
) ReplaceWarehouseCommandHandler {
	return ReplaceWarehouseCommandHandler{
		uowFactory: uowFactory,
		reader:     placementReader{directory: directory},
		policy:     services.NewWarehousePlacementPolicy(),
		cache:      cache,
		now:        now,
	}
}

// Handle replaces the warehouse and returns its new active record.
func (h ReplaceWarehouseCommandHandler) Handle(
	ctx context.Context,
	command ReplaceWarehouseCommand,
) (*warehouse.Warehouse, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	draft := command.Draft()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	keys := placementLockKeys(draft.Location, command.BusinessUnitCode(), command.PayloadCode())
	if err := uow.Lock(ctx, keys...); err != nil {
		return nil, err
	}

	repo := uow.WarehouseRepository()
	current, err := repo.GetActiveByCode(ctx, command.BusinessUnitCode())
	if err != nil {
		return nil, err
	}

	placement, err := h.reader.read(ctx, repo, draft.BusinessUnitCode, command.ChangesCode(), draft.Location)
	if err != nil {
		return nil, err
	}

	if err = h.policy.CheckReplace(current, draft, placement); err != nil {
		return nil, err
	}

	successor, err := current.ReplaceWith(
		kernel.NewUUID(),
		placement.Location.Identification(),
		*draft.Capacity,
		*draft.Stock,
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, successor); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.cache.Evict(ctx, command.BusinessUnitCode().String())

	return successor, nil
}
