package queries

import (
	"context"

	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	products, err := scanProducts(h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, stock
		FROM products
		WHERE id = ?
	`, query.ProductID()))
	if err != nil {
		return ProductResponse{}, err
	}

	if len(products) == 0 {
		return ProductResponse{}, errs.NewObjectNotFoundError("productId", query.ProductID())
	}

	return products[0], nil
}

type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

func (h GetAllProductsQueryHandler) Handle(ctx context.Context, query GetAllProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanProducts(h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, stock
		FROM products
		ORDER BY name
	`))
}

func scanProducts(tx *gorm.DB) ([]ProductResponse, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var p ProductResponse
		if err = rows.Scan(&p.ID, &p.Name, &p.Description, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
