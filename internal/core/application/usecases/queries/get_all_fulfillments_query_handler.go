package queries

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllFulfillmentsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllFulfillmentsQueryHandler(db *gorm.DB) GetAllFulfillmentsQueryHandler {
	return GetAllFulfillmentsQueryHandler{db: db}
}

// Handle returns links ordered by product, store and warehouse code.
func (h GetAllFulfillmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllFulfillmentsQuery,
) ([]FulfillmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if productID, ok := query.ProductID(); ok {
		tx = tx.Raw(`
			SELECT id, product_id, store_id, warehouse_code
			FROM fulfillments
			WHERE product_id = ?
			ORDER BY product_id, store_id, warehouse_code
		`, productID)
	} else {
		tx = tx.Raw(`
			SELECT id, product_id, store_id, warehouse_code
			FROM fulfillments
			ORDER BY product_id, store_id, warehouse_code
		`)
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fulfillments := make([]FulfillmentResponse, 0)
	for rows.Next() {
		var f FulfillmentResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &f.ProductID, &f.StoreID, &f.WarehouseCode); err != nil {
			return nil, err
		}

		fulfillmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		f.ID = fulfillmentID

		fulfillments = append(fulfillments, f)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fulfillments, nil
}
