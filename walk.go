package rmq

// Node is a read-only view of a single node of the implicit tree.
type Node[A any] struct {
	Index   int  // position in the flat tree array
	Depth   int  // 0 for the root
	Left    int  // first element index covered
	Right   int  // last element index covered (inclusive)
	Leaf    bool // true for leafs
	Padding bool // true for nodes covering no element at all
	Value   A    // cached aggregate
}

// Walk calls fn for every node of the tree in pre-order (node, left subtree,
// right subtree). Walking stops at the first error returned by fn, which
// is passed through to the caller. A destroyed Rmq has no nodes.
func (r *Rmq[E, A]) Walk(fn func(n Node[A]) error) error {
	if r.total == 0 || fn == nil {
		return nil
	}
	return r.walkNode(0, 0, fn)
}

func (r *Rmq[E, A]) walkNode(node, depth int, fn func(n Node[A]) error) error {
	n := Node[A]{
		Index:   node,
		Depth:   depth,
		Left:    r.lb[node],
		Right:   r.rb[node],
		Leaf:    node >= r.nodes,
		Padding: r.lb[node] >= len(r.data),
		Value:   r.tree[node],
	}
	if err := fn(n); err != nil {
		return err
	}
	if n.Leaf {
		return nil
	}
	if err := r.walkNode(leftChild(node), depth+1, fn); err != nil {
		return err
	}
	return r.walkNode(rightChild(node), depth+1, fn)
}

// Height returns the number of levels of the tree, where a single leaf has
// height 1 and a destroyed Rmq has height 0.
func (r *Rmq[E, A]) Height() int {
	h := 0
	for l := r.leafs; l > 0; l /= 2 {
		h++
	}
	return h
}
