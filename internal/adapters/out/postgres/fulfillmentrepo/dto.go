// Package fulfillmentrepo persists product-store-warehouse links and answers the distinct
// counts the assignment quotas need.
package fulfillmentrepo

import (
	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FulfillmentDTO is the row of the fulfillments table. The triple is unique.
type FulfillmentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID     int64     `gorm:"not null;uniqueIndex:idx_fulfillments_triple,priority:1"`
	StoreID       int64     `gorm:"not null;uniqueIndex:idx_fulfillments_triple,priority:2;index:idx_fulfillments_store"`
	WarehouseCode string    `gorm:"size:64;not null;uniqueIndex:idx_fulfillments_triple,priority:3;index:idx_fulfillments_warehouse"`
}

func (FulfillmentDTO) TableName() string {
	return "fulfillments"
}

func fromDomain(aggregate *fulfillment.Fulfillment) FulfillmentDTO {
	return FulfillmentDTO{
		ID:            aggregate.ID().Bytes(),
		ProductID:     aggregate.ProductID(),
		StoreID:       aggregate.StoreID(),
		WarehouseCode: aggregate.WarehouseCode().String(),
	}
}

// ToDomain rebuilds a link from its row. The query side reuses it for its raw scans.
func ToDomain(dto FulfillmentDTO) (*fulfillment.Fulfillment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.NewBusinessUnitCode(dto.WarehouseCode)
	if err != nil {
		return nil, err
	}

	return fulfillment.NewFulfillment(id, dto.ProductID, dto.StoreID, code)
}
