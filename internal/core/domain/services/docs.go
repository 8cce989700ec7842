// Package services provides the pure calculators that feed decisions into the
// order workflow. They hold no state beyond their configuration and perform
// no I/O.
//
// The package includes:
//   - YieldCalculator: how many finished units a quantity of raw material yields
//   - DiscountCalculator: the discount tier of a partner's cumulative sales
package services
