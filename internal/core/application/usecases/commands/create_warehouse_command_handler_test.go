package commands_test

import (
	"errors"
	"testing"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateWarehouseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", intPtr(40), intPtr(10))
	code := mustCode(t, "MWH.001")

	repo := new(MockWarehouseRepository)
	uow := new(MockWarehouseUoW)
	directory := new(MockLocationDirectory)
	factory := new(MockWarehouseUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Lock", ctx, []string{"warehouse:MWH.001", "location:ZWOLLE-001"}).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(repo).Once(),
		repo.On("GetActiveByCode", ctx, code).Return(nil, errs.NewObjectNotFoundError("businessUnitCode", "MWH.001")).Once(),
		directory.On("Resolve", "ZWOLLE-001").Return(mustLocation(t, "ZWOLLE-001", 1, 40)).Once(),
		repo.On("GetAllActiveAtLocation", ctx, "ZWOLLE-001").Return([]*warehouse.Warehouse{}, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*warehouse.Warehouse")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateWarehouseCommandHandler(factory, directory, fixedClock)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "MWH.001", created.BusinessUnitCode().String())
	assert.Equal(t, "ZWOLLE-001", created.Location())
	assert.Equal(t, 40, created.Capacity())
	assert.Equal(t, 10, created.Stock())
	assert.Equal(t, fixedNow, created.CreatedAt())
	assert.True(t, created.IsActive())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	directory.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateWarehouseCommandHandler_Handle_LocationQuotaExceeded(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateWarehouseCommand("W2", "ZWOLLE-001", intPtr(1), intPtr(0))

	repo := new(MockWarehouseRepository)
	uow := new(MockWarehouseUoW)
	directory := new(MockLocationDirectory)
	factory := new(MockWarehouseUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Lock", ctx, []string{"warehouse:W2", "location:ZWOLLE-001"}).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(repo).Once(),
		repo.On("GetActiveByCode", ctx, mustCode(t, "W2")).Return(nil, errs.NewObjectNotFoundError("businessUnitCode", "W2")).Once(),
		directory.On("Resolve", "ZWOLLE-001").Return(mustLocation(t, "ZWOLLE-001", 1, 40)).Once(),
		repo.On("GetAllActiveAtLocation", ctx, "ZWOLLE-001").
			Return([]*warehouse.Warehouse{mustWarehouse(t, "W1", "ZWOLLE-001", 40, 10)}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateWarehouseCommandHandler(factory, directory, fixedClock)
	created, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrLocationWarehouseQuotaExceeded)
	assert.Nil(t, created)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateWarehouseCommandHandler_Handle_DuplicateCode(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", intPtr(10), intPtr(0))

	repo := new(MockWarehouseRepository)
	uow := new(MockWarehouseUoW)
	directory := new(MockLocationDirectory)
	factory := new(MockWarehouseUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Lock", ctx, mock.Anything).Return(nil).Once()
	uow.On("WarehouseRepository").Return(repo).Once()
	repo.On("GetActiveByCode", ctx, mustCode(t, "MWH.001")).
		Return(mustWarehouse(t, "MWH.001", "AMSTERDAM-001", 10, 0), nil).Once()
	directory.On("Resolve", "ZWOLLE-001").Return(mustLocation(t, "ZWOLLE-001", 1, 40)).Once()
	repo.On("GetAllActiveAtLocation", ctx, "ZWOLLE-001").Return([]*warehouse.Warehouse{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateWarehouseCommandHandler(factory, directory, fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateWarehouseCommandHandler_Handle_UnknownLocationSkipsOccupancy(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateWarehouseCommand("MWH.001", "NOWHERE-001", intPtr(10), intPtr(0))

	repo := new(MockWarehouseRepository)
	uow := new(MockWarehouseUoW)
	directory := new(MockLocationDirectory)
	factory := new(MockWarehouseUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Lock", ctx, []string{"warehouse:MWH.001", "location:NOWHERE-001"}).Return(nil).Once()
	uow.On("WarehouseRepository").Return(repo).Once()
	repo.On("GetActiveByCode", ctx, mustCode(t, "MWH.001")).
		Return(nil, errs.NewObjectNotFoundError("businessUnitCode", "MWH.001")).Once()
	directory.On("Resolve", "NOWHERE-001").Return(location.Unknown()).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateWarehouseCommandHandler(factory, directory, fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrLocationNotFound)
	repo.AssertNotCalled(t, "GetAllActiveAtLocation", mock.Anything, mock.Anything)
}

func TestCreateWarehouseCommandHandler_Handle_BlankLocationLocksCodeOnly(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateWarehouseCommand("MWH.001", "   ", intPtr(10), intPtr(0))

	repo := new(MockWarehouseRepository)
	uow := new(MockWarehouseUoW)
	directory := new(MockLocationDirectory)
	factory := new(MockWarehouseUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Lock", ctx, []string{"warehouse:MWH.001"}).Return(nil).Once()
	uow.On("WarehouseRepository").Return(repo).Once()
	repo.On("GetActiveByCode", ctx, mustCode(t, "MWH.001")).
		Return(nil, errs.NewObjectNotFoundError("businessUnitCode", "MWH.001")).Once()
	directory.On("Resolve", "   ").Return(location.Unknown()).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateWarehouseCommandHandler(factory, directory, fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrInvalidLocation)
	uow.AssertExpectations(t)
}

func TestCreateWarehouseCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateWarehouseCommand{}
	factory := new(MockWarehouseUoWFactory)

	h := commands.NewCreateWarehouseCommandHandler(factory, new(MockLocationDirectory), fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateWarehouseCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateWarehouseCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", intPtr(40), intPtr(10))

	uow := new(MockWarehouseUoW)
	factory := new(MockWarehouseUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateWarehouseCommandHandler(factory, new(MockLocationDirectory), fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestCreateWarehouseCommandHandler_Handle_LockError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", intPtr(40), intPtr(10))

	uow := new(MockWarehouseUoW)
	factory := new(MockWarehouseUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Lock", ctx, mock.Anything).Return(errors.New("lock timeout")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateWarehouseCommandHandler(factory, new(MockLocationDirectory), fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "lock timeout")
	uow.AssertExpectations(t)
}

func TestCreateWarehouseCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", intPtr(40), intPtr(10))

	repo := new(MockWarehouseRepository)
	uow := new(MockWarehouseUoW)
	directory := new(MockLocationDirectory)
	factory := new(MockWarehouseUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Lock", ctx, mock.Anything).Return(nil).Once()
	uow.On("WarehouseRepository").Return(repo).Once()
	repo.On("GetActiveByCode", ctx, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("businessUnitCode", "MWH.001")).Once()
	directory.On("Resolve", "ZWOLLE-001").Return(mustLocation(t, "ZWOLLE-001", 1, 40)).Once()
	repo.On("GetAllActiveAtLocation", ctx, "ZWOLLE-001").Return([]*warehouse.Warehouse{}, nil).Once()
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateWarehouseCommandHandler(factory, directory, fixedClock)
	created, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	assert.Nil(t, created)
}

func TestCreateWarehouseCommandHandler_Handle_LookupErrorIsSurfaced(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", intPtr(40), intPtr(10))
	storeErr := errors.New("connection reset")

	repo := new(MockWarehouseRepository)
	uow := new(MockWarehouseUoW)
	factory := new(MockWarehouseUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Lock", ctx, mock.Anything).Return(nil).Once()
	uow.On("WarehouseRepository").Return(repo).Once()
	repo.On("GetActiveByCode", ctx, mock.Anything).Return(nil, storeErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateWarehouseCommandHandler(factory, new(MockLocationDirectory), fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, storeErr)
}
