// Package warehouse provides the Warehouse aggregate and its lifecycle.
//
// The package includes:
//   - Warehouse: one record of a logical warehouse identified by its business unit code
//   - Status: the Active -> Archived state machine
//
// Key business rules:
//   - capacity is positive and stock lies in [0, capacity]
//   - archiving is a state transition, never a delete, and happens once per record
//   - replacement archives the current record and creates an Active successor with the same code
//
// Rules that span several warehouses, such as location quotas, live in the services package.
package warehouse
