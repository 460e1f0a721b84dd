package queries

import (
	"errors"
	"fmt"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrGetAllFulfillmentsQueryIsNotConstructed = errors.New(
		"GetAllFulfillmentsQuery must be created via NewGetAllFulfillmentsQuery or NewGetFulfillmentsForProductQuery",
	)
)

// GetAllFulfillmentsQuery lists fulfillment links, optionally for one product only.
//
// Example:
//
//	all := NewGetAllFulfillmentsQuery()
//	forProduct, err := NewGetFulfillmentsForProductQuery(1)
//	if err != nil {
//	    return err
//	}
//	links, err := handler.Handle(ctx, forProduct)
type GetAllFulfillmentsQuery struct {
	productID *int64

	guard guard.ConstructorGuard
}

func NewGetAllFulfillmentsQuery() GetAllFulfillmentsQuery {
	return GetAllFulfillmentsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetFulfillmentsForProductQuery narrows the listing to one product. The product need
// not exist; an unknown product simply has no links.
func NewGetFulfillmentsForProductQuery(productID int64) (GetAllFulfillmentsQuery, error) {
	if productID <= 0 {
		return GetAllFulfillmentsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"productId", fmt.Errorf("%d is not greater than 0", productID),
		)
	}

	return GetAllFulfillmentsQuery{
		productID: &productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetAllFulfillmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllFulfillmentsQueryIsNotConstructed)
}

// ProductID returns the product filter and whether one is set.
func (q GetAllFulfillmentsQuery) ProductID() (int64, bool) {
	if q.productID == nil {
		return 0, false
	}
	return *q.productID, true
}

type FulfillmentResponse struct {
	ID            kernel.UUID
	ProductID     int64
	StoreID       int64
	WarehouseCode string
}
