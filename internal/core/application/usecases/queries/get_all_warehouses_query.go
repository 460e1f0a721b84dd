package queries

import (
	"context"
	"errors"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrGetAllWarehousesQueryIsNotConstructed = errors.New(
		"GetAllWarehousesQuery must be created via NewGetAllWarehousesQuery constructor",
	)
)

// GetAllWarehousesQuery lists every active warehouse.
type GetAllWarehousesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllWarehousesQuery() GetAllWarehousesQuery {
	return GetAllWarehousesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWarehousesQueryIsNotConstructed)
}

// ActiveWarehouses is the part of ports.WarehouseRepository the listing reads from.
type ActiveWarehouses interface {
	GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error)
}

// GetAllWarehousesQueryHandler lists through the warehouse store, so the listing and the
// commands agree on what "active" means.
type GetAllWarehousesQueryHandler struct {
	store ActiveWarehouses
}

func NewGetAllWarehousesQueryHandler(store ActiveWarehouses) GetAllWarehousesQueryHandler {
	return GetAllWarehousesQueryHandler{store: store}
}

// Handle returns the active warehouses ordered by business unit code, archived history
// excluded.
func (h GetAllWarehousesQueryHandler) Handle(
	ctx context.Context,
	query GetAllWarehousesQuery,
) ([]WarehouseResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active, err := h.store.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	warehouses := make([]WarehouseResponse, len(active))
	for i, w := range active {
		warehouses[i] = WarehouseResponse{
			BusinessUnitCode: w.BusinessUnitCode().String(),
			Location:         w.Location(),
			Capacity:         w.Capacity(),
			Stock:            w.Stock(),
			CreatedAt:        w.CreatedAt().UTC(),
		}
	}

	return warehouses, nil
}
