/*
Package formatter outputs the internal structure of an rmq.Rmq for debugging.

Three formats are supported:

▪︎ Dot writes the implicit tree in Graphviz DOT format

▪︎ Print dumps the tree level by level to a (colored) console

▪︎ HTML renders the levels of the tree as an HTML table

Every node is labeled with its aggregate and the range of elements it
covers. Padding nodes, which cover no element, are marked as such.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package formatter

import (
	"fmt"

	"github.com/npillmayer/rmq"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer of package rmq.
func T() tracing.Trace {
	return rmq.T()
}

// Label formats an aggregate for output.
type Label[A any] func(A) string

func (l Label[A]) of(a A) string {
	if l == nil {
		return fmt.Sprint(a)
	}
	return l(a)
}

// levels collects the nodes of r, grouped by depth, in left-to-right order.
func levels[E, A any](r *rmq.Rmq[E, A]) ([][]rmq.Node[A], error) {
	var lvls [][]rmq.Node[A]
	err := r.Walk(func(n rmq.Node[A]) error {
		for len(lvls) <= n.Depth {
			lvls = append(lvls, nil)
		}
		lvls[n.Depth] = append(lvls[n.Depth], n)
		return nil
	})
	return lvls, err
}

func span[A any](n rmq.Node[A]) string {
	if n.Padding {
		return "pad"
	}
	return fmt.Sprintf("%d..%d", n.Left, n.Right)
}
