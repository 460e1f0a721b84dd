package fulfillmentrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFulfillmentRepository implements ports.FulfillmentRepository using GORM.
type GormFulfillmentRepository struct {
	db *gorm.DB
}

func NewGormFulfillmentRepository(db *gorm.DB) *GormFulfillmentRepository {
	return &GormFulfillmentRepository{db: db}
}

func (r *GormFulfillmentRepository) Add(ctx context.Context, aggregate *fulfillment.Fulfillment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("fulfillment", tripleOf(dto), err)
		}
		return err
	}
	return nil
}

func (r *GormFulfillmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&FulfillmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("fulfillment", id.String())
	}

	return nil
}

func (r *GormFulfillmentRepository) Exists(
	ctx context.Context,
	productID, storeID int64,
	warehouseCode kernel.BusinessUnitCode,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FulfillmentDTO{}).
		Where("product_id = ? AND store_id = ? AND warehouse_code = ?", productID, storeID, warehouseCode.String()).
		Count(&count).Error
	return count > 0, err
}

func (r *GormFulfillmentRepository) CountWarehousesForProductAndStore(
	ctx context.Context,
	productID, storeID int64,
) (int, error) {
	return r.countDistinct(ctx, "warehouse_code", "product_id = ? AND store_id = ?", productID, storeID)
}

func (r *GormFulfillmentRepository) CountWarehousesForStore(ctx context.Context, storeID int64) (int, error) {
	return r.countDistinct(ctx, "warehouse_code", "store_id = ?", storeID)
}

func (r *GormFulfillmentRepository) CountProductsForWarehouse(
	ctx context.Context,
	warehouseCode kernel.BusinessUnitCode,
) (int, error) {
	return r.countDistinct(ctx, "product_id", "warehouse_code = ?", warehouseCode.String())
}

func (r *GormFulfillmentRepository) countDistinct(
	ctx context.Context,
	column string,
	query string,
	args ...any,
) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FulfillmentDTO{}).
		Where(query, args...).
		Distinct(column).
		Count(&count).Error
	return int(count), err
}

func tripleOf(dto FulfillmentDTO) string {
	return fmt.Sprintf("%d/%d/%s", dto.ProductID, dto.StoreID, dto.WarehouseCode)
}
