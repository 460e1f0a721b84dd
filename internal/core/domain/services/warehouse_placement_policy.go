package services

import (
	"errors"
	"fmt"
	"strings"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/errs"
)

var (
	ErrInvalidLocation      = warehouse.ErrLocationIsRequired
	ErrInvalidCapacity      = warehouse.ErrInvalidCapacity
	ErrInvalidStock         = warehouse.ErrInvalidStock
	ErrStockExceedsCapacity = warehouse.ErrStockExceedsCapacity

	ErrLocationNotFound = errs.NewValueIsInvalidErrorWithCause(
		"location", errors.New("location is not registered"),
	)
	ErrLocationWarehouseQuotaExceeded = errs.NewValueIsInvalidErrorWithCause(
		"location", errors.New("maximum number of warehouses at location reached"),
	)
	ErrCapacityExceedsLocationMax = errs.NewValueIsInvalidErrorWithCause(
		"capacity", errors.New("capacity exceeds location maximum capacity"),
	)
	ErrTotalCapacityExceedsLocationMax = errs.NewValueIsInvalidErrorWithCause(
		"capacity", errors.New("total capacity at location would exceed location maximum capacity"),
	)
	ErrCapacityCannotAccommodateStock = errs.NewValueIsInvalidErrorWithCause(
		"capacity", errors.New("capacity cannot accommodate the stock of the replaced warehouse"),
	)
	ErrStockMismatch = errs.NewValueIsInvalidErrorWithCause(
		"stock", errors.New("stock must match the stock of the replaced warehouse"),
	)
)

// WarehouseDraft is a proposed warehouse as callers submit it. Capacity and Stock are
// pointers so that "missing" is reported as its own error instead of defaulting to 0.
type WarehouseDraft struct {
	BusinessUnitCode kernel.BusinessUnitCode
	Location         string
	Capacity         *int
	Stock            *int
}

// Placement is the aggregate state a draft is checked against, read inside the same
// transaction that will persist the result.
type Placement struct {
	// CodeTaken is set when an active warehouse already holds the draft's code.
	CodeTaken bool

	// Location is the directory entry for the draft's location, location.Unknown() if none.
	Location location.Location

	// ActiveAtLocation holds the active warehouses at Location.
	ActiveAtLocation []*warehouse.Warehouse
}

// WarehousePlacementPolicy decides whether a warehouse may be created at, or moved to, a
// location. Checks run in a fixed order and the first failure is returned; which error a
// caller sees for a draft with several problems is part of the contract.
//
// Example:
//
//	policy := services.NewWarehousePlacementPolicy()
//	if err := policy.CheckCreate(draft, placement); err != nil {
//	    return err
//	}
//	w, err := warehouse.NewWarehouse(kernel.NewUUID(), draft.BusinessUnitCode,
//	    draft.Location, *draft.Capacity, *draft.Stock, now)
type WarehousePlacementPolicy struct{}

func NewWarehousePlacementPolicy() WarehousePlacementPolicy {
	return WarehousePlacementPolicy{}
}

// CheckCreate validates a new warehouse. Order:
//  1. code already active: ObjectAlreadyExistsError
//  2. blank location: ErrInvalidLocation
//  3. unknown location: ErrLocationNotFound
//  4. warehouse count at location reached: ErrLocationWarehouseQuotaExceeded
//  5. missing or non-positive capacity: ErrInvalidCapacity
//  6. capacity above location maximum: ErrCapacityExceedsLocationMax
//  7. summed capacity above location maximum: ErrTotalCapacityExceedsLocationMax
//  8. missing, negative or above-capacity stock: ErrStockExceedsCapacity
func (p WarehousePlacementPolicy) CheckCreate(draft WarehouseDraft, placement Placement) error {
	if placement.CodeTaken {
		return errs.NewObjectAlreadyExistsError("businessUnitCode", draft.BusinessUnitCode.String())
	}

	if err := p.checkLocation(draft, placement.Location); err != nil {
		return err
	}

	if len(placement.ActiveAtLocation) >= placement.Location.MaxNumberOfWarehouses() {
		return ErrLocationWarehouseQuotaExceeded
	}

	if err := p.checkCapacity(draft, placement.Location); err != nil {
		return err
	}

	if totalCapacity(placement.ActiveAtLocation)+*draft.Capacity > placement.Location.MaxCapacity() {
		return ErrTotalCapacityExceedsLocationMax
	}

	if draft.Stock == nil || *draft.Stock < 0 || *draft.Stock > *draft.Capacity {
		return ErrStockExceedsCapacity
	}

	return nil
}

// CheckReplace validates putting draft in place of current, which the caller has already
// loaded (a missing current warehouse is the caller's NotFound). Order:
//  1. draft carries a different code that is already active: ObjectAlreadyExistsError
//  2. blank location: ErrInvalidLocation; unknown location: ErrLocationNotFound
//  3. warehouse count at location, current excluded, reached: ErrLocationWarehouseQuotaExceeded
//  4. missing or non-positive capacity: ErrInvalidCapacity; above location maximum: ErrCapacityExceedsLocationMax
//  5. capacity below current stock: ErrCapacityCannotAccommodateStock
//  6. missing or negative stock: ErrInvalidStock; stock differs from current: ErrStockMismatch
//  7. summed capacity, current excluded, above location maximum: ErrTotalCapacityExceedsLocationMax
//
// placement.CodeTaken refers to the draft's code and is only consulted when that code
// differs from current's.
func (p WarehousePlacementPolicy) CheckReplace(
	current *warehouse.Warehouse,
	draft WarehouseDraft,
	placement Placement,
) error {
	if err := current.Validate(); err != nil {
		return err
	}

	if draft.BusinessUnitCode.Validate() == nil &&
		!draft.BusinessUnitCode.IsEqual(current.BusinessUnitCode()) &&
		placement.CodeTaken {
		return errs.NewObjectAlreadyExistsError("businessUnitCode", draft.BusinessUnitCode.String())
	}

	if err := p.checkLocation(draft, placement.Location); err != nil {
		return err
	}

	others := excluding(placement.ActiveAtLocation, current)
	if len(others) >= placement.Location.MaxNumberOfWarehouses() {
		return ErrLocationWarehouseQuotaExceeded
	}

	if err := p.checkCapacity(draft, placement.Location); err != nil {
		return err
	}

	if *draft.Capacity < current.Stock() {
		return ErrCapacityCannotAccommodateStock
	}

	if draft.Stock == nil || *draft.Stock < 0 {
		return ErrInvalidStock
	}

	if *draft.Stock != current.Stock() {
		return fmt.Errorf("%w: expected %d, got %d", ErrStockMismatch, current.Stock(), *draft.Stock)
	}

	if totalCapacity(others)+*draft.Capacity > placement.Location.MaxCapacity() {
		return ErrTotalCapacityExceedsLocationMax
	}

	return nil
}

func (p WarehousePlacementPolicy) checkLocation(draft WarehouseDraft, loc location.Location) error {
	if isBlank(draft.Location) {
		return ErrInvalidLocation
	}
	if loc.IsUnknown() {
		return ErrLocationNotFound
	}
	return nil
}

func (p WarehousePlacementPolicy) checkCapacity(draft WarehouseDraft, loc location.Location) error {
	if draft.Capacity == nil || *draft.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if *draft.Capacity > loc.MaxCapacity() {
		return ErrCapacityExceedsLocationMax
	}
	return nil
}

func excluding(warehouses []*warehouse.Warehouse, current *warehouse.Warehouse) []*warehouse.Warehouse {
	others := make([]*warehouse.Warehouse, 0, len(warehouses))
	for _, w := range warehouses {
		if w.IsEqual(current) || w.BusinessUnitCode().IsEqual(current.BusinessUnitCode()) {
			continue
		}
		others = append(others, w)
	}
	return others
}

func totalCapacity(warehouses []*warehouse.Warehouse) int {
	total := 0
	for _, w := range warehouses {
		total += w.Capacity()
	}
	return total
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
