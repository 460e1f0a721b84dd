package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStoreRepository implements ports.StoreRepository using GORM.
type GormStoreRepository struct {
	db *gorm.DB
}

func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

func (r *GormStoreRepository) Exists(ctx context.Context, storeID int64) (bool, error) {
	return exists(ctx, r.db, &StoreDTO{}, storeID)
}

func (r *GormStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := storeFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("name", dto.Name, err)
		}
		return err
	}

	return aggregate.AssignID(dto.ID)
}

func (r *GormStoreRepository) Update(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := storeFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StoreDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "quantity_products_in_stock").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("name", dto.Name, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("storeId", dto.ID)
	}

	return nil
}

func (r *GormStoreRepository) Get(ctx context.Context, storeID int64) (*store.Store, error) {
	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storeId", storeID)
		}
		return nil, err
	}

	return storeToDomain(dto)
}

func (r *GormStoreRepository) Delete(ctx context.Context, storeID int64) error {
	result := r.db.WithContext(ctx).Delete(&StoreDTO{}, "id = ?", storeID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewValueIsInvalidErrorWithCause("storeId",
				fmt.Errorf("store %d is still used by fulfillments: %w", storeID, result.Error))
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("storeId", storeID)
	}

	return nil
}
