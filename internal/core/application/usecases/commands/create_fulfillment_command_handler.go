package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"
)

// CreateFulfillmentCommandHandler links a product, a store and a warehouse.
//
// Checks, first failure wins:
//  1. product, store and active warehouse exist, in that order (errs.ErrObjectNotFound)
//  2. the triple is not linked yet (errs.ErrObjectAlreadyExists)
//  3. FulfillmentQuotaPolicy quotas (errs.ErrQuotaExceeded)
//
// The store key covers both store-scoped quotas and the warehouse-products key covers the
// per-warehouse quota, so concurrent links cannot overshoot either. The product, store and
// warehouse keys are the ones their delete or archive commands hold, so all three still
// exist when the link commits.
type CreateFulfillmentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	policy     services.FulfillmentQuotaPolicy
}

func NewCreateFulfillmentCommandHandler(uowFactory FulfillmentUoWFactory) CreateFulfillmentCommandHandler {
	return CreateFulfillmentCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewFulfillmentQuotaPolicy(),
	}
}

// Handle persists the link and returns it.
func (h CreateFulfillmentCommandHandler) Handle(
	ctx context.Context,
	command CreateFulfillmentCommand,
) (*fulfillment.Fulfillment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.Lock(ctx,
		ports.ProductLockKey(command.ProductID()),
		ports.StoreLockKey(command.StoreID()),
		ports.WarehouseLockKey(command.WarehouseCode().String()),
		ports.WarehouseProductsLockKey(command.WarehouseCode().String()),
	); err != nil {
		return nil, err
	}

	if err := h.checkReferences(ctx, uow, command); err != nil {
		return nil, err
	}

	fulfillments := uow.FulfillmentRepository()
	assignment, err := h.readAssignment(ctx, fulfillments, command)
	if err != nil {
		return nil, err
	}

	if err = h.policy.Check(assignment); err != nil {
		return nil, err
	}

	link, err := fulfillment.NewFulfillment(
		kernel.NewUUID(),
		command.ProductID(),
		command.StoreID(),
		command.WarehouseCode(),
	)
	if err != nil {
		return nil, err
	}

	if err = fulfillments.Add(ctx, link); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return link, nil
}

func (h CreateFulfillmentCommandHandler) checkReferences(
	ctx context.Context,
	uow FulfillmentUoW,
	command CreateFulfillmentCommand,
) error {
	productExists, err := uow.ProductCatalog().Exists(ctx, command.ProductID())
	if err != nil {
		return err
	}
	if !productExists {
		return errs.NewObjectNotFoundError("product", command.ProductID())
	}

	storeExists, err := uow.StoreCatalog().Exists(ctx, command.StoreID())
	if err != nil {
		return err
	}
	if !storeExists {
		return errs.NewObjectNotFoundError("store", command.StoreID())
	}

	_, err = uow.WarehouseRepository().GetActiveByCode(ctx, command.WarehouseCode())
	return err
}

func (h CreateFulfillmentCommandHandler) readAssignment(
	ctx context.Context,
	repo ports.FulfillmentRepository,
	command CreateFulfillmentCommand,
) (services.Assignment, error) {
	assignment := services.Assignment{
		ProductID:     command.ProductID(),
		StoreID:       command.StoreID(),
		WarehouseCode: command.WarehouseCode(),
	}

	var err error
	if assignment.AlreadyLinked, err = repo.Exists(
		ctx, command.ProductID(), command.StoreID(), command.WarehouseCode(),
	); err != nil {
		return services.Assignment{}, err
	}

	if assignment.WarehousesForProductAndStore, err = repo.CountWarehousesForProductAndStore(
		ctx, command.ProductID(), command.StoreID(),
	); err != nil {
		return services.Assignment{}, err
	}

	if assignment.WarehousesForStore, err = repo.CountWarehousesForStore(ctx, command.StoreID()); err != nil {
		return services.Assignment{}, err
	}

	if assignment.ProductsForWarehouse, err = repo.CountProductsForWarehouse(
		ctx, command.WarehouseCode(),
	); err != nil {
		return services.Assignment{}, err
	}

	return assignment, nil
}
