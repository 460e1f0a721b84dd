package ports

import "fulfilment/internal/core/domain/model/location"

// LocationDirectory resolves location identifiers to their limits.
type LocationDirectory interface {
	// Resolve never fails: blank and unknown identifiers yield location.Unknown().
	Resolve(identifier string) location.Location

	// All lists the known locations ordered by identification.
	All() []location.Location
}
