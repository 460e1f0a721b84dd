package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/core/ports"
)

// CreateWarehouseCommandHandler opens warehouses within the limits of their location.
//
// The handler locks the business unit code and the target location, reads the active
// warehouses there, and runs WarehousePlacementPolicy.CheckCreate. Two concurrent creates
// at one location therefore cannot both see a free slot.
//
// Example:
//
//	handler := NewCreateWarehouseCommandHandler(uowFactory, directory, time.Now)
//	w, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrLocationWarehouseQuotaExceeded) {
//	    // location is full
//	}
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
	reader     placementReader
	policy     services.WarehousePlacementPolicy
	now        Clock
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse creation.
func NewCreateWarehouseCommandHandler(
	uowFactory WarehouseUoWFactory,
	directory ports.LocationDirectory,
	now Clock,
) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
		reader:     placementReader{directory: directory},
		policy:     services.NewWarehousePlacementPolicy(),
		now:        now,
	}
}

// Handle validates and persists the new warehouse, returning it with createdAt set.
func (h CreateWarehouseCommandHandler) Handle(
	ctx context.Context,
	command CreateWarehouseCommand,
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

	if err := uow.Lock(ctx, placementLockKeys(draft.Location, draft.BusinessUnitCode)...); err != nil {
		return nil, err
	}

	repo := uow.WarehouseRepository()
	placement, err := h.reader.read(ctx, repo, draft.BusinessUnitCode, true, draft.Location)
	if err != nil {
		return nil, err
	}

	if err = h.policy.CheckCreate(draft, placement); err != nil {
		return nil, err
	}

	created, err := warehouse.NewWarehouse(
		kernel.NewUUID(),
		draft.BusinessUnitCode,
		placement.Location.Identification(),
		*draft.Capacity,
		*draft.Stock,
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
