package product

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fulfilment/internal/pkg/errs"
)

const (
	MaxNameLength        = 40
	MaxDescriptionLength = 255
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	ErrNameIsRequired      = errs.NewValueIsRequiredError("name")
	ErrNameIsTooLong       = errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("name is longer than %d characters", MaxNameLength))
	ErrDescriptionTooLong  = errs.NewValueIsInvalidErrorWithCause("description", fmt.Errorf("description is longer than %d characters", MaxDescriptionLength))
	ErrInvalidStock        = errs.NewValueIsInvalidErrorWithCause("stock", errors.New("stock must not be negative"))
	ErrInvalidID           = errs.NewValueIsInvalidErrorWithCause("id", errors.New("id must be positive"))
	ErrIDIsAlreadyAssigned = errs.NewValueIsInvalidErrorWithCause("id", errors.New("id is already assigned"))
)

// Product is a catalog item. A Product built by NewProduct has no ID until the repository
// assigns one.
type Product struct {
	id          int64
	name        string
	description string
	stock       int

	isConstructed bool
}

// NewProduct creates a product that has not been saved yet.
func NewProduct(name, description string, stock int) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := p.Update(name, description, stock); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a stored product.
func RestoreProduct(id int64, name, description string, stock int) (*Product, error) {
	p, err := NewProduct(name, description, stock)
	if err != nil {
		return nil, err
	}

	if err = p.AssignID(id); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was built by a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Stock() int {
	return p.stock
}

// AssignID records the ID the database generated. It can be set once.
func (p *Product) AssignID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if p.id != 0 {
		return ErrIDIsAlreadyAssigned
	}
	p.id = id
	return nil
}

// Update replaces every mutable field. Nothing changes when any value is invalid.
func (p *Product) Update(name, description string, stock int) error {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := errors.Join(
		validateName(name),
		validateDescription(description),
		validateStock(stock),
	); err != nil {
		return err
	}

	p.name = name
	p.description = description
	p.stock = stock
	return nil
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

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
