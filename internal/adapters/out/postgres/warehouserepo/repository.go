package warehouserepo

import (
	"context"
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

const activeOnly = "archived_at IS NULL"

// GormWarehouseRepository implements ports.WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db *gorm.DB
}

func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// Add inserts a new record. A second active record for the same code violates
// idx_warehouses_active_code and is reported as errs.ObjectAlreadyExistsError.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("businessUnitCode", dto.BusinessUnitCode, err)
		}
		return err
	}
	return nil
}

// Update writes the mutable columns of an existing record.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WarehouseDTO{}).
		Where("id = ?", dto.ID).
		Select("location", "capacity", "stock", "archived_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("warehouse", aggregate.ID().String())
	}

	return nil
}

func (r *GormWarehouseRepository) GetActiveByCode(
	ctx context.Context,
	code kernel.BusinessUnitCode,
) (*warehouse.Warehouse, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	err := r.db.WithContext(ctx).
		Where(activeOnly).
		First(&dto, "business_unit_code = ?", code.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("businessUnitCode", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormWarehouseRepository) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).
		Where(activeOnly).
		Order("business_unit_code").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormWarehouseRepository) GetAllActiveAtLocation(
	ctx context.Context,
	location string,
) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).
		Where(activeOnly).
		Where("location = ?", location).
		Order("business_unit_code").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
