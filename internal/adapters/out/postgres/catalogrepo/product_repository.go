package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Exists(ctx context.Context, productID int64) (bool, error) {
	return exists(ctx, r.db, &ProductDTO{}, productID)
}

// Add inserts the product and assigns it the identity the database generated.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("name", dto.Name, err)
		}
		return err
	}

	return aggregate.AssignID(dto.ID)
}

func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "description", "stock").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("name", dto.Name, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", dto.ID)
	}

	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, productID int64) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", productID)
		}
		return nil, err
	}

	return productToDomain(dto)
}

// Delete removes the product. The fulfillments foreign key refuses it while any
// fulfillment still names the product.
func (r *GormProductRepository) Delete(ctx context.Context, productID int64) error {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", productID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewValueIsInvalidErrorWithCause("productId",
				fmt.Errorf("product %d is still used by fulfillments: %w", productID, result.Error))
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", productID)
	}

	return nil
}

func exists(ctx context.Context, db *gorm.DB, model any, id int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
