package queries

import (
	"errors"
	"fmt"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrGetStoreQueryIsNotConstructed = errors.New(
		"GetStoreQuery must be created via NewGetStoreQuery constructor",
	)
	ErrGetAllStoresQueryIsNotConstructed = errors.New(
		"GetAllStoresQuery must be created via NewGetAllStoresQuery constructor",
	)
)

type GetStoreQuery struct {
	storeID int64

	guard guard.ConstructorGuard
}

func NewGetStoreQuery(storeID int64) (GetStoreQuery, error) {
	if storeID <= 0 {
		return GetStoreQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"storeId", fmt.Errorf("%d is not greater than 0", storeID),
		)
	}

	return GetStoreQuery{storeID: storeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStoreQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreQueryIsNotConstructed)
}

func (q GetStoreQuery) StoreID() int64 {
	return q.storeID
}

type GetAllStoresQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllStoresQuery() GetAllStoresQuery {
	return GetAllStoresQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllStoresQuery) Validate() error {
	return q.guard.Validate(ErrGetAllStoresQueryIsNotConstructed)
}

type StoreResponse struct {
	ID                      int64
	Name                    string
	QuantityProductsInStock int
}
