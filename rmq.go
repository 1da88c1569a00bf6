package rmq

import (
	"iter"

	"github.com/npillmayer/rmq/accumulate"
)

// Rmq is a segment tree over elements of type E, caching aggregates of type A.
//
// Internal nodes occupy tree[0, nodes), leafs occupy tree[nodes, total).
// Node i has children 2i+1 and 2i+2. Each node covers the inclusive element
// range [lb[i], rb[i]], which for padding leafs lies beyond Size().
type Rmq[E, A any] struct {
	cfg   Config[E, A]
	acc   accumulate.Accumulator[A, E]
	data  []E
	tree  []A
	lb    []int // left boundary per node
	rb    []int // right boundary per node
	nodes int   // count of internal nodes
	leafs int   // count of leafs, a power of 2
	total int   // nodes + leafs
}

// New creates an Rmq holding an empty sequence.
func New[E, A any](cfg Config[E, A]) (*Rmq[E, A], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	r := &Rmq[E, A]{cfg: cfg, acc: cfg.Accumulator}
	r.Clear()
	return r, nil
}

// Config returns a copy of the effective configuration.
func (r *Rmq[E, A]) Config() Config[E, A] {
	return r.cfg
}

// Accumulator returns the accumulator aggregates are built with.
func (r *Rmq[E, A]) Accumulator() accumulate.Accumulator[A, E] {
	return r.acc
}

// Init replaces the contents of r with a copy of elements and rebuilds the
// tree bottom-up. Init takes O(n).
func (r *Rmq[E, A]) Init(elements []E) {
	n := len(elements)
	r.data = make([]E, n)
	copy(r.data, elements)
	r.leafs = 1
	for r.leafs < n {
		r.leafs *= 2
	}
	r.nodes = r.leafs - 1
	r.total = r.nodes + r.leafs
	r.tree = make([]A, r.total)
	r.lb = make([]int, r.total)
	r.rb = make([]int, r.total)
	for i := 0; i < r.leafs; i++ {
		leaf := r.nodes + i
		if i < n {
			r.tree[leaf] = r.acc.Compute(r.data[i])
		} else {
			r.tree[leaf] = r.acc.Neutral()
		}
		r.lb[leaf], r.rb[leaf] = i, i
	}
	for i := r.nodes - 1; i >= 0; i-- {
		left, right := leftChild(i), rightChild(i)
		r.tree[i] = r.acc.Combine(r.tree[left], r.tree[right])
		r.lb[i] = r.lb[left]
		r.rb[i] = r.rb[right]
	}
	T().Debugf("rmq: initialized with %d elements, %d leafs", n, r.leafs)
}

// InitN initializes r with n zero-valued elements.
func (r *Rmq[E, A]) InitN(n int) error {
	if err := r.cfg.Checks.Validate(n >= 0, ErrRange,
		"rmq size %d must not be negative", n); err != nil {
		return err
	}
	r.Init(make([]E, n))
	return nil
}

// Clear drops all elements; equivalent to Init with an empty sequence.
func (r *Rmq[E, A]) Clear() {
	r.Init(nil)
}

// Destroy releases all storage. Until r is initialized again, any indexed
// access fails.
func (r *Rmq[E, A]) Destroy() {
	r.data = nil
	r.tree = nil
	r.lb = nil
	r.rb = nil
	r.nodes, r.leafs, r.total = 0, 0, 0
	T().Debugf("rmq: destroyed")
}

// Size returns the number of elements.
func (r *Rmq[E, A]) Size() int {
	return len(r.data)
}

// Elements iterates over the elements in index order. The sequence may be
// iterated more than once; it reflects writes made between iterations but
// offers no isolation against writes interleaved with an iteration.
func (r *Rmq[E, A]) Elements() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < len(r.data); i++ {
			if !yield(r.data[i]) {
				return
			}
		}
	}
}

// Total returns the aggregate of all elements, or Neutral for an empty or
// destroyed Rmq.
func (r *Rmq[E, A]) Total() A {
	if r.total == 0 {
		return r.acc.Neutral()
	}
	return r.tree[0]
}

func parent(node int) int {
	return (node+1)/2 - 1
}

func leftChild(node int) int {
	return (node+1)*2 - 1
}

func rightChild(node int) int {
	return (node + 1) * 2
}

func (r *Rmq[E, A]) validateIndex(index int) error {
	return r.cfg.Checks.Validate(index >= 0 && index < len(r.data), ErrIndexOutOfRange,
		"rmq index %d is out of range [0..%d]", index, len(r.data)-1)
}

func (r *Rmq[E, A]) validateQuery(index, length int) error {
	// length is compared against the remainder, as index+length may overflow
	return r.cfg.Checks.Validate(index >= 0 && length >= 0 && index <= len(r.data) && length <= len(r.data)-index, ErrRange,
		"rmq query of %d elements at %d is out of range [0..%d]", length, index, len(r.data)-1)
}

// Get returns the element at index.
func (r *Rmq[E, A]) Get(index int) (E, error) {
	if err := r.validateIndex(index); err != nil {
		var zero E
		return zero, err
	}
	return r.data[index], nil
}

// Set replaces the element at index and recombines the aggregates of all
// ancestors of its leaf. No other subtree is touched.
func (r *Rmq[E, A]) Set(index int, value E) error {
	if err := r.validateIndex(index); err != nil {
		return err
	}
	r.data[index] = value
	r.tree[r.nodes+index] = r.acc.Compute(value)
	for node := parent(r.nodes + index); node >= 0; node = parent(node) {
		r.tree[node] = r.acc.Combine(r.tree[leftChild(node)], r.tree[rightChild(node)])
	}
	return nil
}

// Aggregate returns the cached aggregate of the element at index, which
// equals Compute of that element.
func (r *Rmq[E, A]) Aggregate(index int) (A, error) {
	if err := r.validateIndex(index); err != nil {
		var zero A
		return zero, err
	}
	return r.tree[r.nodes+index], nil
}

// Query returns the aggregate of length elements, starting with the one at
// index. Aggregates are combined left to right. A query with length 0
// returns the neutral aggregate.
func (r *Rmq[E, A]) Query(index, length int) (A, error) {
	if err := r.validateQuery(index, length); err != nil {
		var zero A
		return zero, err
	}
	if length == 0 || r.total == 0 {
		return r.acc.Neutral(), nil
	}
	return r.query(0, index, index+length-1), nil
}

// query descends from node, stopping at nodes which are either fully
// contained in [from, to] or disjoint from it. At most two nodes per level
// are split, which bounds the visit count to O(log n).
func (r *Rmq[E, A]) query(node, from, to int) A {
	lb, rb := r.lb[node], r.rb[node]
	if from <= lb && to >= rb {
		return r.tree[node]
	}
	if from > rb || to < lb {
		return r.acc.Neutral()
	}
	assert(node < r.nodes, "rmq query split a leaf")
	return r.acc.Combine(
		r.query(leftChild(node), from, to),
		r.query(rightChild(node), from, to),
	)
}
