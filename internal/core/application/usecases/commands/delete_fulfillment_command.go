package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrDeleteFulfillmentCommandIsNotConstructed = errors.New(
		"DeleteFulfillmentCommand must be created via NewDeleteFulfillmentCommand constructor",
	)
)

// DeleteFulfillmentCommand represents a request to remove a fulfillment link by ID.
type DeleteFulfillmentCommand struct { //nolint:recvcheck //using for validation
	fulfillmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteFulfillmentCommand(fulfillmentID kernel.UUID) (DeleteFulfillmentCommand, error) {
	if err := fulfillmentID.Validate(); err != nil {
		return DeleteFulfillmentCommand{}, err
	}

	return DeleteFulfillmentCommand{
		fulfillmentID: fulfillmentID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteFulfillmentCommandIsNotConstructed)
}

func (c DeleteFulfillmentCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}
