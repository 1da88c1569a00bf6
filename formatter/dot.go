package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rmq"
)

// Dot outputs the internal structure of an Rmq in Graphviz DOT format.
// label formats aggregates; if nil, fmt.Sprint is used.
func Dot[E, A any](r *rmq.Rmq[E, A], w io.Writer, label Label[A]) error {
	var nodelist, edgelist strings.Builder
	err := r.Walk(func(n rmq.Node[A]) error {
		text := fmt.Sprintf("%s\\n[%s]", escapeDot(label.of(n.Value)), span(n))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", n.Index, text, nodeDotStyles(n.Leaf, n.Padding))
		if !n.Leaf {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", n.Index, 2*n.Index+1)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", n.Index, 2*n.Index+2)
		}
		return nil
	})
	if err != nil {
		T().Errorf("rmq DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	_, err = io.WriteString(w, "}\n")
	return err
}

func nodeDotStyles(isleaf bool, padding bool) string {
	s := ",style=filled"
	if padding {
		s = ",style=dashed"
	}
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

func escapeDot(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
