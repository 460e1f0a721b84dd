package ports

import (
	"context"
	"time"
)

// WarehouseSnapshot is the cached read model of an active warehouse.
type WarehouseSnapshot struct {
	BusinessUnitCode string    `json:"businessUnitCode"`
	Location         string    `json:"location"`
	Capacity         int       `json:"capacity"`
	Stock            int       `json:"stock"`
	CreatedAt        time.Time `json:"createdAt"`
}

// WarehouseCache keeps active warehouses by business unit code for the read side.
// Commands that archive or replace a warehouse evict its code after committing.
type WarehouseCache interface {
	// Get reports a miss with ok == false and a nil error.
	Get(ctx context.Context, businessUnitCode string) (snapshot WarehouseSnapshot, ok bool, err error)
	Set(ctx context.Context, snapshot WarehouseSnapshot) error
	Evict(ctx context.Context, businessUnitCode string) error
}
