package queries

import (
	"errors"
	"strings"

	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrGetLocationUtilizationQueryIsNotConstructed = errors.New(
		"GetLocationUtilizationQuery must be created via NewGetLocationUtilizationQuery constructor",
	)
)

// GetLocationUtilizationQuery reports how much of a location's limits active warehouses use.
type GetLocationUtilizationQuery struct {
	identification string

	guard guard.ConstructorGuard
}

func NewGetLocationUtilizationQuery(identification string) (GetLocationUtilizationQuery, error) {
	id := strings.TrimSpace(identification)
	if id == "" {
		return GetLocationUtilizationQuery{}, location.ErrIdentificationIsRequired
	}

	return GetLocationUtilizationQuery{
		identification: id,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetLocationUtilizationQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationUtilizationQueryIsNotConstructed)
}

func (q GetLocationUtilizationQuery) Identification() string {
	return q.identification
}

// LocationUtilizationResponse pairs a location's limits with its active usage.
type LocationUtilizationResponse struct {
	Identification        string
	MaxNumberOfWarehouses int
	MaxCapacity           int
	ActiveWarehouses      int
	UsedCapacity          int
}

// IsFull reports whether no further warehouse can be created at the location.
func (r LocationUtilizationResponse) IsFull() bool {
	return r.ActiveWarehouses >= r.MaxNumberOfWarehouses || r.UsedCapacity >= r.MaxCapacity
}
