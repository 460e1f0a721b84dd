package warehouse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
)

var (
	// ErrWarehouseIsNotConstructed is returned for a Warehouse that bypassed NewWarehouse
	// and RestoreWarehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

	ErrLocationIsRequired   = errs.NewValueIsRequiredError("location")
	ErrInvalidCapacity      = errs.NewValueIsInvalidErrorWithCause("capacity", errors.New("capacity must be greater than 0"))
	ErrInvalidStock         = errs.NewValueIsInvalidErrorWithCause("stock", errors.New("stock must not be negative"))
	ErrStockExceedsCapacity = errs.NewValueIsInvalidErrorWithCause("stock", errors.New("stock exceeds capacity"))
	ErrCreatedAtIsRequired  = errs.NewValueIsRequiredError("createdAt")
)

// Warehouse is one record of a logical warehouse. The business unit code is the external
// identity; the record ID distinguishes the archived predecessors of a code from its
// single active record.
//
// Invariants:
//   - capacity > 0 and 0 <= stock <= capacity
//   - an Archived record carries the instant it was archived, an Active one does not
//   - a record is archived at most once
type Warehouse struct {
	id               kernel.UUID
	businessUnitCode kernel.BusinessUnitCode
	location         string
	capacity         int
	stock            int
	createdAt        time.Time
	archivedAt       *time.Time
	status           Status

	isConstructed bool
}

// NewWarehouse creates an Active warehouse record.
//
// Location limits are not checked here; they depend on the other warehouses at the location
// and are enforced by services.WarehousePlacementPolicy before the record is built.
//
// Example:
//
//	code, _ := kernel.NewBusinessUnitCode("MWH.001")
//	w, err := warehouse.NewWarehouse(kernel.NewUUID(), code, "ZWOLLE-001", 40, 10, time.Now())
func NewWarehouse(
	id kernel.UUID,
	businessUnitCode kernel.BusinessUnitCode,
	location string,
	capacity int,
	stock int,
	createdAt time.Time,
) (*Warehouse, error) {
	w := &Warehouse{
		status:        Active,
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setBusinessUnitCode(businessUnitCode),
		w.setLocation(location),
		w.setCapacityAndStock(capacity, stock),
		w.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse rebuilds a persisted record. A nil archivedAt restores an Active record.
func RestoreWarehouse(
	id kernel.UUID,
	businessUnitCode kernel.BusinessUnitCode,
	location string,
	capacity int,
	stock int,
	createdAt time.Time,
	archivedAt *time.Time,
) (*Warehouse, error) {
	w, err := NewWarehouse(id, businessUnitCode, location, capacity, stock, createdAt)
	if err != nil {
		return nil, err
	}

	if archivedAt != nil {
		if err = w.Archive(*archivedAt); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// Validate ensures the Warehouse was built by a constructor.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// IsEqual compares records, not logical warehouses: a replaced warehouse and its successor
// share a code but are different records.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

func (w *Warehouse) BusinessUnitCode() kernel.BusinessUnitCode {
	return w.businessUnitCode
}

func (w *Warehouse) Location() string {
	return w.location
}

func (w *Warehouse) Capacity() int {
	return w.capacity
}

func (w *Warehouse) Stock() int {
	return w.stock
}

func (w *Warehouse) CreatedAt() time.Time {
	return w.createdAt
}

// ArchivedAt returns nil while the record is Active.
func (w *Warehouse) ArchivedAt() *time.Time {
	if w.archivedAt == nil {
		return nil
	}
	at := *w.archivedAt
	return &at
}

func (w *Warehouse) Status() Status {
	return w.status
}

func (w *Warehouse) IsActive() bool {
	return w.status == Active
}

// Archive retires the record at the given instant. Archiving twice fails.
func (w *Warehouse) Archive(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("archivedAt")
	}

	newStatus, err := w.status.Archive()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.archivedAt = &at
	return nil
}

// ReplaceWith archives w and returns its Active successor. The successor keeps the business
// unit code and takes the new location, capacity and stock; w is left untouched when the
// successor cannot be built.
func (w *Warehouse) ReplaceWith(
	successorID kernel.UUID,
	location string,
	capacity int,
	stock int,
	at time.Time,
) (*Warehouse, error) {
	if !w.IsActive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to replace", w.status.String()),
		)
	}

	successor, err := NewWarehouse(successorID, w.businessUnitCode, location, capacity, stock, at)
	if err != nil {
		return nil, err
	}

	if err = w.Archive(at); err != nil {
		return nil, err
	}

	return successor, nil
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setBusinessUnitCode(code kernel.BusinessUnitCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	w.businessUnitCode = code
	return nil
}

func (w *Warehouse) setLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrLocationIsRequired
	}
	w.location = location
	return nil
}

func (w *Warehouse) setCapacityAndStock(capacity, stock int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	if stock > capacity {
		return ErrStockExceedsCapacity
	}
	w.capacity = capacity
	w.stock = stock
	return nil
}

func (w *Warehouse) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	w.createdAt = createdAt
	return nil
}
