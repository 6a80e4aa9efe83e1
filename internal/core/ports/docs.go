// Package ports defines the persistence contracts of the HarvestHub order core.
// The interfaces establish the boundary between the domain and infrastructure,
// enabling dependency inversion and testability.
package ports
