package services

import (
	"errors"
	"fmt"

	"orderflow/internal/pkg/errs"
)

// DiscountTier grants Percent to partners whose cumulative quantity is at
// least From.
type DiscountTier struct {
	From    int64
	Percent int
}

// DiscountCalculator maps cumulative sale quantity to a discount percentage.
// Tiers are half-open intervals [From, next.From). The result is reported
// alongside sales and never changes an order's cost.
type DiscountCalculator struct {
	tiers []DiscountTier
}

// DefaultDiscountTiers returns the reference tiers:
//
//	[0, 10000)       0%
//	[10000, 50000)   5%
//	[50000, 300000)  10%
//	[300000, ∞)      15%
func DefaultDiscountTiers() []DiscountTier {
	return []DiscountTier{
		{From: 0, Percent: 0},
		{From: 10_000, Percent: 5},
		{From: 50_000, Percent: 10},
		{From: 300_000, Percent: 15},
	}
}

// NewDiscountCalculator requires tiers starting at 0 in strictly ascending order.
func NewDiscountCalculator(tiers []DiscountTier) (DiscountCalculator, error) {
	if len(tiers) == 0 || tiers[0].From != 0 {
		return DiscountCalculator{}, errs.NewValueIsInvalidErrorWithCause("discount tiers",
			errors.New("first tier must start at 0"))
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].From <= tiers[i-1].From {
			return DiscountCalculator{}, errs.NewValueIsInvalidErrorWithCause("discount tiers",
				fmt.Errorf("tier %d does not start above tier %d", i, i-1))
		}
	}

	return DiscountCalculator{tiers: append([]DiscountTier(nil), tiers...)}, nil
}

func DefaultDiscountCalculator() DiscountCalculator {
	c, err := NewDiscountCalculator(DefaultDiscountTiers())
	if err != nil {
		panic(err)
	}
	return c
}

// Compute returns the discount percentage for cumulativeQuantity.
func (c DiscountCalculator) Compute(cumulativeQuantity int64) (int, error) {
	if cumulativeQuantity < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("cumulative quantity",
			fmt.Errorf("%d is negative", cumulativeQuantity))
	}

	percent := 0
	for _, tier := range c.tiers {
		if cumulativeQuantity < tier.From {
			break
		}
		percent = tier.Percent
	}
	return percent, nil
}
