// Package queries contains the read side of the fulfilment service. Query handlers read with
// plain SQL, outside any unit of work, and may observe a slightly stale but consistent view.
package queries

import (
	"errors"
	"time"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrGetWarehouseQueryIsNotConstructed = errors.New(
		"GetWarehouseQuery must be created via NewGetWarehouseQuery constructor",
	)
)

// GetWarehouseQuery fetches one active warehouse by business unit code.
type GetWarehouseQuery struct {
	businessUnitCode kernel.BusinessUnitCode

	guard guard.ConstructorGuard
}

func NewGetWarehouseQuery(businessUnitCode string) (GetWarehouseQuery, error) {
	code, err := kernel.NewBusinessUnitCode(businessUnitCode)
	if err != nil {
		return GetWarehouseQuery{}, err
	}

	return GetWarehouseQuery{
		businessUnitCode: code,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (q GetWarehouseQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseQueryIsNotConstructed)
}

func (q GetWarehouseQuery) BusinessUnitCode() kernel.BusinessUnitCode {
	return q.businessUnitCode
}

// WarehouseResponse is the read model of an active warehouse.
type WarehouseResponse struct {
	BusinessUnitCode string
	Location         string
	Capacity         int
	Stock            int
	CreatedAt        time.Time
}
