// Package queries holds the read side of the order core. Query handlers read
// straight from the database with raw SQL into response structs; they never load
// aggregates and never write.
package queries
