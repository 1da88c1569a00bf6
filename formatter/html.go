package formatter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/rmq"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the levels of r as an HTML table. Each level is a table row,
// and each node spans as many columns as it has leafs.
func HTML[E, A any](r *rmq.Rmq[E, A], w io.Writer, label Label[A]) error {
	lvls, err := levels(r)
	if err != nil {
		return err
	}
	table := element(atom.Table, "class", "rmq")
	if len(lvls) > 0 {
		leafs := len(lvls[len(lvls)-1])
		for _, lvl := range lvls {
			tr := element(atom.Tr)
			for _, n := range lvl {
				class := "inner"
				if n.Padding {
					class = "padding"
				} else if n.Leaf {
					class = "leaf"
				}
				td := element(atom.Td,
					"class", class,
					"colspan", strconv.Itoa(leafs/len(lvl)),
					"title", fmt.Sprintf("node %d [%d..%d]", n.Index, n.Left, n.Right),
				)
				td.AppendChild(&html.Node{Type: html.TextNode, Data: label.of(n.Value)})
				tr.AppendChild(td)
			}
			table.AppendChild(tr)
		}
	}
	return html.Render(w, table)
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}
