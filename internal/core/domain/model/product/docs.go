// Package product provides the Product entity of the catalog the fulfillments link to.
//
// Key business rules:
//   - a product has a non-blank name of at most MaxNameLength characters, unique in the catalog
//   - stock is never negative
//   - the ID is assigned by the store on insert and never changes afterwards
package product
