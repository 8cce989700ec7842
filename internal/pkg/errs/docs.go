// Package errs provides the typed errors shared by the order workflow service.
//
// Each error type pairs a sentinel (ErrValueIsInvalid, ErrObjectNotFound, ...)
// with a struct carrying details. The struct unwraps to its sentinel, so
// callers classify failures with errors.Is and render details with Error().
//
// InfrastructureError marks storage and connectivity faults. It unwraps to
// both ErrInfrastructure and the original cause, letting transports report a
// system fault separately from a rule violation.
package errs
