package queries

import (
	"context"

	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetStoreQueryHandler struct {
	db *gorm.DB
}

func NewGetStoreQueryHandler(db *gorm.DB) GetStoreQueryHandler {
	return GetStoreQueryHandler{db: db}
}

func (h GetStoreQueryHandler) Handle(ctx context.Context, query GetStoreQuery) (StoreResponse, error) {
	if err := query.Validate(); err != nil {
		return StoreResponse{}, err
	}

	stores, err := scanStores(h.db.WithContext(ctx).Raw(`
		SELECT id, name, quantity_products_in_stock
		FROM stores
		WHERE id = ?
	`, query.StoreID()))
	if err != nil {
		return StoreResponse{}, err
	}

	if len(stores) == 0 {
		return StoreResponse{}, errs.NewObjectNotFoundError("storeId", query.StoreID())
	}

	return stores[0], nil
}

// GetAllStoresQueryHandler lists stores ordered by name.
type GetAllStoresQueryHandler struct {
	db *gorm.DB
}

func NewGetAllStoresQueryHandler(db *gorm.DB) GetAllStoresQueryHandler {
	return GetAllStoresQueryHandler{db: db}
}

func (h GetAllStoresQueryHandler) Handle(ctx context.Context, query GetAllStoresQuery) ([]StoreResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanStores(h.db.WithContext(ctx).Raw(`
		SELECT id, name, quantity_products_in_stock
		FROM stores
		ORDER BY name
	`))
}

func scanStores(tx *gorm.DB) ([]StoreResponse, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]StoreResponse, 0)
	for rows.Next() {
		var s StoreResponse
		if err = rows.Scan(&s.ID, &s.Name, &s.QuantityProductsInStock); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}
