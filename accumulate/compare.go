package accumulate

import (
	"fmt"

	"github.com/npillmayer/rmq/precond"
	"golang.org/x/exp/constraints"
)

// CmpRes is the result of a three-way comparison.
type CmpRes int8

// Comparison results.
const (
	LT CmpRes = -1
	EQ CmpRes = 0
	GT CmpRes = 1
)

func (r CmpRes) String() string {
	switch r {
	case LT:
		return "LT"
	case EQ:
		return "EQ"
	case GT:
		return "GT"
	}
	return fmt.Sprintf("CmpRes(%d)", int8(r))
}

// CmpF is a three-way comparison function.
type CmpF[T any] func(a, b T) CmpRes

// EqF is an equivalence test.
type EqF[T any] func(a, b T) bool

// StdCmp compares by the natural order of T.
func StdCmp[T constraints.Ordered](a, b T) CmpRes {
	switch {
	case a < b:
		return LT
	case a > b:
		return GT
	}
	return EQ
}

// StdEq tests for equality in the natural order of T.
func StdEq[T constraints.Ordered](a, b T) bool {
	return StdCmp(a, b) == EQ
}

// EqByCmp derives an equivalence test from a comparison function.
func EqByCmp[T any](cmp CmpF[T]) EqF[T] {
	return func(a, b T) bool {
		return cmp(a, b) == EQ
	}
}

// Negate negates an equivalence test.
func Negate[T any](eq EqF[T]) EqF[T] {
	return func(a, b T) bool {
		return !eq(a, b)
	}
}

// Invert flips a comparison result; EQ stays EQ.
func Invert(r CmpRes) CmpRes {
	switch r {
	case LT:
		return GT
	case GT:
		return LT
	}
	return EQ
}

// InvertF reverses the order defined by cmp.
func InvertF[T any](cmp CmpF[T]) CmpF[T] {
	return func(a, b T) CmpRes {
		return Invert(cmp(a, b))
	}
}

// MinOf returns the first minimal argument. At least one argument is required.
func MinOf[T any](cmp CmpF[T], args ...T) (T, error) {
	var zero T
	if err := precond.Validate(len(args) > 0, precond.ErrRange, "MinOf must have at least one arg"); err != nil {
		return zero, err
	}
	m := args[0]
	for _, a := range args[1:] {
		if cmp(a, m) == LT {
			m = a
		}
	}
	return m, nil
}

// MaxOf returns the first maximal argument. At least one argument is required.
func MaxOf[T any](cmp CmpF[T], args ...T) (T, error) {
	var zero T
	if err := precond.Validate(len(args) > 0, precond.ErrRange, "MaxOf must have at least one arg"); err != nil {
		return zero, err
	}
	m := args[0]
	for _, a := range args[1:] {
		if cmp(a, m) == GT {
			m = a
		}
	}
	return m, nil
}
