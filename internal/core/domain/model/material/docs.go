// Package material provides the raw-material side of the inventory ledger.
//
// The package includes:
//   - Material: a stocked raw material with an advisory minimum quantity
//   - Movement: an append-only warehouse movement record
//   - InsufficientStockError: the typed failure of a reservation
//
// Key business rules:
//   - Stock is never negative; a failed reservation leaves it untouched
//   - Every stock change is paired with exactly one Movement
//   - Movements are never mutated once recorded
package material
