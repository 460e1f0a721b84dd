package commands_test

import (
	"testing"
	"time"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func intPtr(v int) *int { return &v }

func mustCode(t *testing.T, raw string) kernel.BusinessUnitCode {
	t.Helper()
	code, err := kernel.NewBusinessUnitCode(raw)
	require.NoError(t, err)
	return code
}

func mustLocation(t *testing.T, id string, maxWarehouses, maxCapacity int) location.Location {
	t.Helper()
	loc, err := location.NewLocation(id, maxWarehouses, maxCapacity)
	require.NoError(t, err)
	return loc
}

func mustWarehouse(t *testing.T, code, loc string, capacity, stock int) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse(
		kernel.NewUUID(), mustCode(t, code), loc, capacity, stock, fixedNow.Add(-24*time.Hour),
	)
	require.NoError(t, err)
	return w
}
