package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/you-not-fish/lambdatree/internal/syntax"
)

// FprintDOT writes t as a Graphviz digraph. Nodes are declared in id
// order and edges follow child order, so layout engines that honour input
// order draw productions left to right.
func FprintDOT(w io.Writer, t *syntax.Tree, opts Options) error {
	name := opts.GraphName
	if name == "" {
		name = "ParseTree"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", strconv.Quote(name))
	fmt.Fprintf(bw, "\tordering=out;\n")

	for i := 0; i < t.Len(); i++ {
		id := syntax.NodeID(i)
		fmt.Fprintf(bw, "\tn%d [label=%s%s];\n", id, strconv.Quote(t.Label(id)), dotShape(t.Kind(id)))
	}
	for i := 0; i < t.Len(); i++ {
		id := syntax.NodeID(i)
		for _, c := range t.Children(id) {
			fmt.Fprintf(bw, "\tn%d -> n%d;\n", id, c)
		}
	}

	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}

func dotShape(k syntax.NodeKind) string {
	switch k {
	case syntax.Terminal:
		return ", shape=box"
	case syntax.Epsilon:
		return ", shape=plaintext"
	}
	return ""
}
