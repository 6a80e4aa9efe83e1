// Package errorlog defines the persisted diagnostic entry written when a core
// operation fails unexpectedly.
package errorlog
