// Package services holds the rules that span more than one aggregate: the capacity and
// assignment constraint engine of the fulfilment domain.
//
// The package includes:
//   - WarehousePlacementPolicy: ordered checks for creating and replacing warehouses against
//     the limits of their location and the warehouses already there
//   - FulfillmentQuotaPolicy: the per product/store, per store and per warehouse link quotas
//
// Both policies are pure. Command handlers read the state they need inside a unit of work,
// hand it to a policy, and persist only when the policy returns nil. Every failure is a
// package-level error value, so callers can match the exact rule with errors.Is and still
// classify it through the errs sentinels.
package services
