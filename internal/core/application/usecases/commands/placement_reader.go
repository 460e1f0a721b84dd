package commands

import (
	"context"
	"errors"
	"slices"
	"strings"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"
)

// placementReader loads the state the placement policy judges a draft by. It must run after
// the command has locked the draft's code and location.
type placementReader struct {
	directory ports.LocationDirectory
}

// read resolves locationID and loads the active warehouses there. When checkCode is set it
// also reports whether code is held by an active warehouse.
func (r placementReader) read(
	ctx context.Context,
	repo ports.WarehouseRepository,
	code kernel.BusinessUnitCode,
	checkCode bool,
	locationID string,
) (services.Placement, error) {
	var placement services.Placement

	if checkCode {
		taken, err := codeTaken(ctx, repo, code)
		if err != nil {
			return services.Placement{}, err
		}
		placement.CodeTaken = taken
	}

	placement.Location = r.directory.Resolve(locationID)
	if placement.Location.IsUnknown() {
		return placement, nil
	}

	active, err := repo.GetAllActiveAtLocation(ctx, placement.Location.Identification())
	if err != nil {
		return services.Placement{}, err
	}
	placement.ActiveAtLocation = active

	return placement, nil
}

func codeTaken(ctx context.Context, repo ports.WarehouseRepository, code kernel.BusinessUnitCode) (bool, error) {
	_, err := repo.GetActiveByCode(ctx, code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// placementLockKeys returns the keys guarding a warehouse code and the location it targets.
func placementLockKeys(locationID string, codes ...kernel.BusinessUnitCode) []string {
	keys := make([]string, 0, len(codes)+1)
	for _, code := range codes {
		if code.Validate() != nil {
			continue
		}
		if key := ports.WarehouseLockKey(code.String()); !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	if id := strings.TrimSpace(locationID); id != "" {
		keys = append(keys, ports.LocationLockKey(id))
	}
	return keys
}
