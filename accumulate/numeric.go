package accumulate

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Number is a type with a natural additive zero.
type Number interface {
	constraints.Integer | constraints.Float
}

// SumAccumulator adds numbers. Aggregate and value types coincide.
//
// Floating point addition is not strictly associative; sums of floats may
// differ in the last bits depending on the grouping of a range.
type SumAccumulator[T Number] struct{}

// Sum creates a numeric sum accumulator.
func Sum[T Number]() SumAccumulator[T] {
	return SumAccumulator[T]{}
}

func (SumAccumulator[T]) Compute(v T) T           { return v }
func (SumAccumulator[T]) Accumulate(acc, v T) T   { return acc + v }
func (SumAccumulator[T]) Combine(left, right T) T { return left + right }
func (SumAccumulator[T]) Neutral() T              { return 0 }

// DecimalAccumulator adds arbitrary-precision decimals.
type DecimalAccumulator struct{}

var _ Accumulator[decimal.Decimal, decimal.Decimal] = DecimalAccumulator{}

// DecimalSum creates an exact sum accumulator for decimals.
func DecimalSum() DecimalAccumulator {
	return DecimalAccumulator{}
}

// Compute returns v unchanged.
func (DecimalAccumulator) Compute(v decimal.Decimal) decimal.Decimal {
	return v
}

// Accumulate adds v to acc.
func (DecimalAccumulator) Accumulate(acc, v decimal.Decimal) decimal.Decimal {
	return acc.Add(v)
}

// Combine adds two partial sums.
func (DecimalAccumulator) Combine(left, right decimal.Decimal) decimal.Decimal {
	return left.Add(right)
}

// Neutral returns decimal.Zero.
func (DecimalAccumulator) Neutral() decimal.Decimal {
	return decimal.Zero
}
