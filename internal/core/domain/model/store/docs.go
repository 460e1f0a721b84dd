// Package store provides the Store entity: a retail store that receives products through
// fulfillments.
//
// Stores are mirrored to the legacy store manager after every create and update; see
// ports.LegacyStoreGateway.
package store
