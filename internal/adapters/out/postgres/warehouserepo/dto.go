// Package warehouserepo persists warehouse records. Replacing or archiving a warehouse never
// deletes a row: the old record gets archived_at set and stays as history, so the table holds
// at most one row per code with archived_at NULL.
package warehouserepo

import (
	"time"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO is the row of the warehouses table. The partial unique index keeps one active
// row per business unit code.
type WarehouseDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessUnitCode string    `gorm:"size:64;not null;uniqueIndex:idx_warehouses_active_code,where:archived_at IS NULL"`
	Location         string    `gorm:"size:64;not null"`
	Capacity         int       `gorm:"not null"`
	Stock            int       `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`
	ArchivedAt       *time.Time
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:               aggregate.ID().Bytes(),
		BusinessUnitCode: aggregate.BusinessUnitCode().String(),
		Location:         aggregate.Location(),
		Capacity:         aggregate.Capacity(),
		Stock:            aggregate.Stock(),
		CreatedAt:        aggregate.CreatedAt(),
		ArchivedAt:       aggregate.ArchivedAt(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.NewBusinessUnitCode(dto.BusinessUnitCode)
	if err != nil {
		return nil, err
	}

	var archivedAt *time.Time
	if dto.ArchivedAt != nil {
		at := dto.ArchivedAt.UTC()
		archivedAt = &at
	}

	return warehouse.RestoreWarehouse(
		id, code, dto.Location, dto.Capacity, dto.Stock, dto.CreatedAt.UTC(), archivedAt,
	)
}

func toDomainList(dtos []WarehouseDTO) ([]*warehouse.Warehouse, error) {
	warehouses := make([]*warehouse.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, nil
}
