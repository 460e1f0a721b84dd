package commands

import (
	"context"

	"fulfilment/internal/core/ports"
)

// ArchiveWarehouseCommandHandler retires active warehouses. Archiving a code with no active
// record, including one archived a moment ago, fails with errs.ErrObjectNotFound.
type ArchiveWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
	cache      CacheEvictor
	now        Clock
}

func NewArchiveWarehouseCommandHandler(
	uowFactory WarehouseUoWFactory,
	cache CacheEvictor,
	now Clock,
) ArchiveWarehouseCommandHandler {
	return ArchiveWarehouseCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		now:        now,
	}
}

func (h ArchiveWarehouseCommandHandler) Handle(ctx context.Context, command ArchiveWarehouseCommand) error {
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

	code := command.BusinessUnitCode()
	if err := uow.Lock(ctx, ports.WarehouseLockKey(code.String())); err != nil {
		return err
	}

	repo := uow.WarehouseRepository()
	current, err := repo.GetActiveByCode(ctx, code)
	if err != nil {
		return err
	}

	if err = current.Archive(h.now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, current); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.cache.Evict(ctx, code.String())

	return nil
}
