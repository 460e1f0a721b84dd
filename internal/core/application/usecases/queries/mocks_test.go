package queries_test

import (
	"context"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWarehouseCache struct{ mock.Mock }

func (m *MockWarehouseCache) Get(ctx context.Context, code string) (ports.WarehouseSnapshot, bool, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(ports.WarehouseSnapshot), args.Bool(1), args.Error(2)
}

func (m *MockWarehouseCache) Set(ctx context.Context, snapshot ports.WarehouseSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockWarehouseCache) Evict(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockActiveWarehouses struct{ mock.Mock }

func (m *MockActiveWarehouses) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*warehouse.Warehouse)
	return list, args.Error(1)
}
