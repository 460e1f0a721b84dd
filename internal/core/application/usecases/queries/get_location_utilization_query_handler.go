package queries

import (
	"context"

	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLocationUtilizationQueryHandler combines directory limits with the active warehouses
// stored at each location.
type GetLocationUtilizationQueryHandler struct {
	db        *gorm.DB
	directory ports.LocationDirectory
}

func NewGetLocationUtilizationQueryHandler(
	db *gorm.DB,
	directory ports.LocationDirectory,
) GetLocationUtilizationQueryHandler {
	return GetLocationUtilizationQueryHandler{db: db, directory: directory}
}

// Handle reports one location. Locations missing from the directory are
// errs.ObjectNotFoundError even when warehouses reference them.
func (h GetLocationUtilizationQueryHandler) Handle(
	ctx context.Context,
	query GetLocationUtilizationQuery,
) (LocationUtilizationResponse, error) {
	if err := query.Validate(); err != nil {
		return LocationUtilizationResponse{}, err
	}

	loc := h.directory.Resolve(query.Identification())
	if loc.IsUnknown() {
		return LocationUtilizationResponse{}, errs.NewObjectNotFoundError("location", query.Identification())
	}

	usage, err := h.usage(ctx, loc.Identification())
	if err != nil {
		return LocationUtilizationResponse{}, err
	}

	return utilizationOf(loc, usage[loc.Identification()]), nil
}

// HandleAll reports every directory location, ordered by identification.
func (h GetLocationUtilizationQueryHandler) HandleAll(ctx context.Context) ([]LocationUtilizationResponse, error) {
	usage, err := h.usage(ctx, "")
	if err != nil {
		return nil, err
	}

	locations := h.directory.All()
	result := make([]LocationUtilizationResponse, 0, len(locations))
	for _, loc := range locations {
		result = append(result, utilizationOf(loc, usage[loc.Identification()]))
	}

	return result, nil
}

type locationUsage struct {
	warehouses int
	capacity   int
}

// usage sums active warehouses per location, for one location or, when only is empty, all.
func (h GetLocationUtilizationQueryHandler) usage(ctx context.Context, only string) (map[string]locationUsage, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT location, COUNT(*), COALESCE(SUM(capacity), 0)
		FROM warehouses
		WHERE archived_at IS NULL AND (? = '' OR location = ?)
		GROUP BY location
	`, only, only).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := make(map[string]locationUsage)
	for rows.Next() {
		var id string
		var u locationUsage
		if err = rows.Scan(&id, &u.warehouses, &u.capacity); err != nil {
			return nil, err
		}
		usage[id] = u
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return usage, nil
}

func utilizationOf(loc location.Location, u locationUsage) LocationUtilizationResponse {
	return LocationUtilizationResponse{
		Identification:        loc.Identification(),
		MaxNumberOfWarehouses: loc.MaxNumberOfWarehouses(),
		MaxCapacity:           loc.MaxCapacity(),
		ActiveWarehouses:      u.warehouses,
		UsedCapacity:          u.capacity,
	}
}
