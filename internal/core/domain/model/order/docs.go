// Package order contains the Order aggregate: one sale of the staple
// product, whether taken at the counter, over the phone, or imported from
// the marketplace.
//
// The aggregate owns its lifecycle state machine (see Status), the rider
// assignment with its route position, and the external marketplace identity
// that keeps imports idempotent. Stock consumption is not stored on the
// order; the stock ledger derives it from the order's quantity and status.
package order
