// Package kernel holds the value objects shared by every aggregate of the fulfilment domain.
//
// The package includes:
//   - UUID: surrogate identifier for warehouse records and fulfillments
//   - BusinessUnitCode: the external, replacement-stable warehouse identifier
//
// Both are immutable and reject their zero values in Validate, so an aggregate that embeds
// one can tell a reconstructed value from a forgotten one.
package kernel
