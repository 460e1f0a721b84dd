package queries

import (
	"context"
	"database/sql"

	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWarehouseQueryHandler reads through the warehouse cache. A miss, or a cache that
// fails, falls back to the database and refills the entry.
//
// Example:
//
//	handler := NewGetWarehouseQueryHandler(db, cache)
//	query, err := NewGetWarehouseQuery("MWH.001")
//	if err != nil {
//	    return err
//	}
//	w, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no active warehouse with that code
//	}
type GetWarehouseQueryHandler struct {
	db    *gorm.DB
	cache ports.WarehouseCache
}

func NewGetWarehouseQueryHandler(db *gorm.DB, cache ports.WarehouseCache) GetWarehouseQueryHandler {
	return GetWarehouseQueryHandler{db: db, cache: cache}
}

func (h GetWarehouseQueryHandler) Handle(ctx context.Context, query GetWarehouseQuery) (WarehouseResponse, error) {
	if err := query.Validate(); err != nil {
		return WarehouseResponse{}, err
	}

	code := query.BusinessUnitCode().String()

	if snapshot, ok, err := h.cache.Get(ctx, code); err == nil && ok {
		return fromSnapshot(snapshot), nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT business_unit_code, location, capacity, stock, created_at
		FROM warehouses
		WHERE business_unit_code = ? AND archived_at IS NULL
	`, code).Rows()
	if err != nil {
		return WarehouseResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return WarehouseResponse{}, err
		}
		return WarehouseResponse{}, errs.NewObjectNotFoundError("businessUnitCode", code)
	}

	response, err := scanWarehouse(rows)
	if err != nil {
		return WarehouseResponse{}, err
	}

	_ = h.cache.Set(ctx, toSnapshot(response))

	return response, nil
}

func scanWarehouse(rows *sql.Rows) (WarehouseResponse, error) {
	var w WarehouseResponse
	if err := rows.Scan(&w.BusinessUnitCode, &w.Location, &w.Capacity, &w.Stock, &w.CreatedAt); err != nil {
		return WarehouseResponse{}, err
	}
	w.CreatedAt = w.CreatedAt.UTC()
	return w, nil
}

func fromSnapshot(s ports.WarehouseSnapshot) WarehouseResponse {
	return WarehouseResponse{
		BusinessUnitCode: s.BusinessUnitCode,
		Location:         s.Location,
		Capacity:         s.Capacity,
		Stock:            s.Stock,
		CreatedAt:        s.CreatedAt,
	}
}

func toSnapshot(w WarehouseResponse) ports.WarehouseSnapshot {
	return ports.WarehouseSnapshot{
		BusinessUnitCode: w.BusinessUnitCode,
		Location:         w.Location,
		Capacity:         w.Capacity,
		Stock:            w.Stock,
		CreatedAt:        w.CreatedAt,
	}
}
