package rmq

import "iter"

// Structure is a sequence container with an explicit lifecycle.
type Structure[E any] interface {
	Init(elements []E)
	InitN(n int) error
	Clear()
	Destroy()
	Size() int
	Elements() iter.Seq[E]
}

// RandomAccess is a Structure with indexed reads and writes.
type RandomAccess[E any] interface {
	Structure[E]
	Get(index int) (E, error)
	Set(index int, value E) error
}

// RangeAggregator is a RandomAccess sequence which answers aggregate
// queries over single elements and contiguous ranges.
type RangeAggregator[E, A any] interface {
	RandomAccess[E]
	Aggregate(index int) (A, error)
	Query(index, length int) (A, error)
}

var _ RangeAggregator[int, int] = (*Rmq[int, int])(nil)
