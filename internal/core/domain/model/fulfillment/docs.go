// Package fulfillment provides the Fulfillment entity, the link stating that a warehouse
// supplies a product to a store.
package fulfillment
