// Package catalogrepo stores the product and store catalogs. Fulfillment creation only asks
// whether an entry exists; the catalog commands manage the rows themselves.
package catalogrepo

import (
	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/core/domain/model/store"
)

type ProductDTO struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:40;not null;unique"`
	Description string `gorm:"size:255;not null;default:''"`
	Stock       int    `gorm:"not null;default:0"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type StoreDTO struct {
	ID                      int64  `gorm:"primaryKey"`
	Name                    string `gorm:"size:40;not null;unique"`
	QuantityProductsInStock int    `gorm:"not null;default:0"`
}

func (StoreDTO) TableName() string {
	return "stores"
}

func productFromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Stock:       p.Stock(),
	}
}

func productToDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Name, dto.Description, dto.Stock)
}

func storeFromDomain(s *store.Store) StoreDTO {
	return StoreDTO{
		ID:                      s.ID(),
		Name:                    s.Name(),
		QuantityProductsInStock: s.QuantityProductsInStock(),
	}
}

func storeToDomain(dto StoreDTO) (*store.Store, error) {
	return store.RestoreStore(dto.ID, dto.Name, dto.QuantityProductsInStock)
}
