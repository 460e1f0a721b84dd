// Package locationdirectory serves location limits from a table fixed at startup.
package locationdirectory

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fulfilment/internal/core/domain/model/location"
)

var ErrDuplicateIdentification = errors.New("location identification is listed twice")

// Entry is one row of the location table.
type Entry struct {
	Identification        string
	MaxNumberOfWarehouses int
	MaxCapacity           int
}

// DefaultEntries is the location table the service ships with.
func DefaultEntries() []Entry {
	return []Entry{
		{Identification: "ZWOLLE-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
		{Identification: "ZWOLLE-002", MaxNumberOfWarehouses: 2, MaxCapacity: 50},
		{Identification: "AMSTERDAM-001", MaxNumberOfWarehouses: 5, MaxCapacity: 100},
		{Identification: "AMSTERDAM-002", MaxNumberOfWarehouses: 3, MaxCapacity: 75},
		{Identification: "TILBURG-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
		{Identification: "HELMOND-001", MaxNumberOfWarehouses: 1, MaxCapacity: 45},
		{Identification: "EINDHOVEN-001", MaxNumberOfWarehouses: 2, MaxCapacity: 70},
		{Identification: "VETSBY-001", MaxNumberOfWarehouses: 1, MaxCapacity: 90},
	}
}

// StaticDirectory implements ports.LocationDirectory over an immutable map, so it is safe
// for concurrent use.
type StaticDirectory struct {
	byID   map[string]location.Location
	sorted []location.Location
}

// NewStaticDirectory validates entries and builds the directory.
func NewStaticDirectory(entries []Entry) (*StaticDirectory, error) {
	d := &StaticDirectory{
		byID:   make(map[string]location.Location, len(entries)),
		sorted: make([]location.Location, 0, len(entries)),
	}

	for _, e := range entries {
		loc, err := location.NewLocation(e.Identification, e.MaxNumberOfWarehouses, e.MaxCapacity)
		if err != nil {
			return nil, err
		}
		if _, ok := d.byID[loc.Identification()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIdentification, loc.Identification())
		}
		d.byID[loc.Identification()] = loc
		d.sorted = append(d.sorted, loc)
	}

	slices.SortFunc(d.sorted, func(a, b location.Location) int {
		return strings.Compare(a.Identification(), b.Identification())
	})

	return d, nil
}

// NewDefaultDirectory builds the directory from DefaultEntries.
func NewDefaultDirectory() *StaticDirectory {
	d, err := NewStaticDirectory(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return d
}

// Resolve returns location.Unknown() for blank and unlisted identifiers.
func (d *StaticDirectory) Resolve(identifier string) location.Location {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return location.Unknown()
	}

	loc, ok := d.byID[id]
	if !ok {
		return location.Unknown()
	}
	return loc
}

func (d *StaticDirectory) All() []location.Location {
	return slices.Clone(d.sorted)
}
