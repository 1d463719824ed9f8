package syntax

import "strings"

// Visitor is called for each node during Walk with its depth below the
// root. If it returns false, the children of the node are not visited.
type Visitor func(id NodeID, depth int) bool

// Walk traverses t in depth-first pre-order, visiting children in
// production order.
func Walk(t *Tree, v Visitor) {
	if t == nil || t.root == NoNode {
		return
	}
	walk(t, t.root, 0, v)
}

func walk(t *Tree, id NodeID, depth int, v Visitor) {
	if !v(id, depth) {
		return
	}
	for _, c := range t.nodes[id].children {
		walk(t, c, depth+1, v)
	}
}

// Leaves returns the labels of the terminal leaves of t in pre-order.
// ε leaves are skipped.
func Leaves(t *Tree) []string {
	var out []string
	Walk(t, func(id NodeID, _ int) bool {
		if t.Kind(id) == Terminal {
			out = append(out, t.Label(id))
		}
		return true
	})
	return out
}

// Yield returns the space-separated leaf labels of t: a token-equivalent
// rendering of the parsed input in canonical spelling.
func Yield(t *Tree) string {
	return strings.Join(Leaves(t), " ")
}
