// Package kernel provides the value objects shared by every aggregate of the
// order workflow: identifiers, calendar dates and the clock that supplies
// "now" to the domain.
//
// The package includes:
//   - UUID: an entity identifier whose zero value is invalid
//   - Date: a calendar day exchanged as YYYY-MM-DD
//   - Clock: the source of the current instant, swappable in tests
//
// All types are immutable values and safe for concurrent use.
package kernel
