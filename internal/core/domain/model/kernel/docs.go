// Package kernel holds the primitives shared by every HarvestHub aggregate.
//
// The package includes:
//   - UUID: identifier value object with validation and comparison
//   - Role and Actor: the explicit identity (id + marketplace role) passed into
//     every core operation in place of ambient session state
//
// Values are immutable; zero values fail validation.
package kernel
