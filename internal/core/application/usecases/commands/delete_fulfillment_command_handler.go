package commands

import (
	"context"
)

// DeleteFulfillmentCommandHandler removes fulfillment links. Deleting can only lower the
// quota counts, so no lock is taken.
type DeleteFulfillmentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

func NewDeleteFulfillmentCommandHandler(uowFactory FulfillmentUoWFactory) DeleteFulfillmentCommandHandler {
	return DeleteFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ErrObjectNotFound for an unknown ID.
func (h DeleteFulfillmentCommandHandler) Handle(ctx context.Context, command DeleteFulfillmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.FulfillmentRepository().Delete(ctx, command.FulfillmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
