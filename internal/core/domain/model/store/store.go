package store

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fulfilment/internal/pkg/errs"
)

const MaxNameLength = 40

var (
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

	ErrNameIsRequired      = errs.NewValueIsRequiredError("name")
	ErrNameIsTooLong       = errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("name is longer than %d characters", MaxNameLength))
	ErrInvalidQuantity     = errs.NewValueIsInvalidErrorWithCause("quantityProductsInStock", errors.New("quantity must not be negative"))
	ErrInvalidID           = errs.NewValueIsInvalidErrorWithCause("id", errors.New("id must be positive"))
	ErrIDIsAlreadyAssigned = errs.NewValueIsInvalidErrorWithCause("id", errors.New("id is already assigned"))
)

// Store is a retail store. A Store built by NewStore has no ID until the repository assigns
// one.
type Store struct {
	id                      int64
	name                    string
	quantityProductsInStock int

	isConstructed bool
}

// NewStore creates a store that has not been saved yet.
func NewStore(name string, quantityProductsInStock int) (*Store, error) {
	s := &Store{isConstructed: true}

	if err := s.Update(name, quantityProductsInStock); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStore rebuilds a saved store.
func RestoreStore(id int64, name string, quantityProductsInStock int) (*Store, error) {
	s, err := NewStore(name, quantityProductsInStock)
	if err != nil {
		return nil, err
	}

	if err = s.AssignID(id); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Store was built by a constructor.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

func (s *Store) ID() int64 {
	return s.id
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) QuantityProductsInStock() int {
	return s.quantityProductsInStock
}

// AssignID records the ID the database generated. It can be set once.
func (s *Store) AssignID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if s.id != 0 {
		return ErrIDIsAlreadyAssigned
	}
	s.id = id
	return nil
}

// Update replaces every mutable field.
func (s *Store) Update(name string, quantityProductsInStock int) error {
	name = strings.TrimSpace(name)

	if err := errors.Join(
		validateName(name),
		validateQuantity(quantityProductsInStock),
	); err != nil {
		return err
	}

	s.name = name
	s.quantityProductsInStock = quantityProductsInStock
	return nil
}

// Patch changes only the fields that are given. A given name must still be valid.
func (s *Store) Patch(name *string, quantityProductsInStock *int) error {
	newName, newQuantity := s.name, s.quantityProductsInStock
	if name != nil {
		newName = *name
	}
	if quantityProductsInStock != nil {
		newQuantity = *quantityProductsInStock
	}
	return s.Update(newName, newQuantity)
}

func validateName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameIsTooLong
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}
