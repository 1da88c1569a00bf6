package accumulate

import "iter"

// Accumulator folds values of type V into aggregates of type A.
type Accumulator[A, V any] interface {
	// Compute makes an aggregate from a single value.
	Compute(v V) A
	// Accumulate folds v into acc.
	Accumulate(acc A, v V) A
	// Combine joins two aggregates, left before right.
	Combine(left, right A) A
	// Neutral is the identity of Combine.
	Neutral() A
}

// Fold accumulates all values of seq, starting from the neutral aggregate.
func Fold[A, V any](acc Accumulator[A, V], seq iter.Seq[V]) A {
	agg := acc.Neutral()
	if seq == nil {
		return agg
	}
	for v := range seq {
		agg = acc.Accumulate(agg, v)
	}
	return agg
}

// --- Simple accumulation ---------------------------------------------------

// SimpleAccumulator accumulates values with an arbitrary binary function.
// Its aggregate is Option[T], with None as the neutral element.
type SimpleAccumulator[T any] struct {
	f func(T, T) T
}

var _ Accumulator[Option[int], int] = (*SimpleAccumulator[int])(nil)

// Simple creates an accumulator from f, which should be associative.
func Simple[T any](f func(T, T) T) *SimpleAccumulator[T] {
	if f == nil {
		panic("accumulate.Simple: accumulation function is nil")
	}
	return &SimpleAccumulator[T]{f: f}
}

// Compute returns Some(v).
func (sa *SimpleAccumulator[T]) Compute(v T) Option[T] {
	return Some(v)
}

// Accumulate returns Some(v) for a None acc, Some(f(acc, v)) otherwise.
func (sa *SimpleAccumulator[T]) Accumulate(acc Option[T], v T) Option[T] {
	a, ok := acc.Get()
	if !ok {
		return Some(v)
	}
	return Some(sa.f(a, v))
}

// Combine applies f if both aggregates carry a value, and otherwise returns
// the one that does (if any).
func (sa *SimpleAccumulator[T]) Combine(left, right Option[T]) Option[T] {
	l, lok := left.Get()
	if !lok {
		return right
	}
	r, rok := right.Get()
	if !rok {
		return left
	}
	return Some(sa.f(l, r))
}

// Neutral returns None.
func (sa *SimpleAccumulator[T]) Neutral() Option[T] {
	return None[T]()
}

// Min accumulates the minimal value with respect to cmp.
// Of equal values the leftmost one is kept.
func Min[T any](cmp CmpF[T]) *SimpleAccumulator[T] {
	return Simple(func(a, b T) T {
		if cmp(a, b) == GT {
			return b
		}
		return a
	})
}

// Max accumulates the maximal value with respect to cmp.
// Of equal values the leftmost one is kept.
func Max[T any](cmp CmpF[T]) *SimpleAccumulator[T] {
	return Simple(func(a, b T) T {
		if cmp(a, b) == LT {
			return b
		}
		return a
	})
}
