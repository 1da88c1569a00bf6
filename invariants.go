package rmq

import "fmt"

// Check validates the structural invariants of the tree and compares cached
// aggregates against a recomputation from the elements, using eq to compare
// aggregates.
//
// This checker is intended for tests; it takes O(n).
func (r *Rmq[E, A]) Check(eq func(a, b A) bool) error {
	if r == nil {
		return fmt.Errorf("%w: nil rmq", ErrInvalidConfig)
	}
	if r.total == 0 {
		if r.data != nil || r.tree != nil {
			return fmt.Errorf("%w: destroyed rmq still holds storage", ErrInvariant)
		}
		return nil
	}
	if r.leafs < 1 || r.leafs&(r.leafs-1) != 0 {
		return fmt.Errorf("%w: leaf count %d is not a power of 2", ErrInvariant, r.leafs)
	}
	if r.leafs < len(r.data) || (r.leafs > 1 && r.leafs/2 >= len(r.data)) {
		return fmt.Errorf("%w: leaf count %d does not fit size %d", ErrInvariant, r.leafs, len(r.data))
	}
	if r.nodes != r.leafs-1 || r.total != r.nodes+r.leafs || len(r.tree) != r.total {
		return fmt.Errorf("%w: inconsistent node counts", ErrInvariant)
	}
	for i := 0; i < r.leafs; i++ {
		leaf := r.nodes + i
		if r.lb[leaf] != i || r.rb[leaf] != i {
			return fmt.Errorf("%w: leaf %d covers [%d..%d]", ErrInvariant, i, r.lb[leaf], r.rb[leaf])
		}
		want := r.acc.Neutral()
		if i < len(r.data) {
			want = r.acc.Compute(r.data[i])
		}
		if eq != nil && !eq(r.tree[leaf], want) {
			return fmt.Errorf("%w: stale aggregate at leaf %d", ErrInvariant, i)
		}
	}
	for i := r.nodes - 1; i >= 0; i-- {
		left, right := leftChild(i), rightChild(i)
		if r.lb[i] != r.lb[left] || r.rb[i] != r.rb[right] || r.rb[left]+1 != r.lb[right] {
			return fmt.Errorf("%w: node %d boundaries do not match its children", ErrInvariant, i)
		}
		if eq != nil && !eq(r.tree[i], r.acc.Combine(r.tree[left], r.tree[right])) {
			return fmt.Errorf("%w: stale aggregate at node %d", ErrInvariant, i)
		}
	}
	return nil
}
