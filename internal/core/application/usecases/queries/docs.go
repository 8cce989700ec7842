// Package queries holds the read side of the application layer.
//
// Query handlers never open a transaction: they read through repositories
// obtained from a fresh unit of work that was never begun, and shape the
// domain objects into flat response structs for the transport layer.
package queries
