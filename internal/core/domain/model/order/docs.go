// Package order implements the Order aggregate and its status state machine.
//
// The package includes:
//   - Order: a buyer's purchase request with a price snapshot and a concurrency version
//   - Status: Pending, Accepted, Rejected, Cancelled and the allowed transitions
//
// Key business rules:
//   - orders start Pending; the farmer accepts or rejects them
//   - buyers may cancel Pending or Accepted orders, farmers only Accepted ones
//   - Rejected and Cancelled are terminal
//   - any order except a Cancelled one keeps its crop from being deleted
package order
