// Package services provides domain services that span several aggregates of the
// HarvestHub order core.
//
// The package includes:
//   - DeletionPlanner: orders the cascading deletions of orders and crops
//   - DeletionPlan and its DeletionStep variants: the plan the application layer executes
//
// Storage-level cascades are absent from the schema; every dependent
// record is removed through an explicit plan, children before parents.
package services
