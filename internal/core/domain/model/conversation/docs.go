// Package conversation models buyer/farmer chat threads as far as the order
// core needs them: they are persisted and removed together with a crop.
package conversation
