// Package product provides the read-only product catalog entry used by the
// order workflow: its yield parameters and its bill of materials.
package product
