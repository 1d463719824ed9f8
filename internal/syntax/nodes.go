package syntax

import "fmt"

// NodeID addresses a node in a Tree. IDs are assigned in creation order,
// which is pre-order: a node is created before any of its children.
type NodeID int32

// NoNode is returned in place of a NodeID when parsing fails.
const NoNode NodeID = -1

// NodeKind classifies parse tree nodes.
type NodeKind uint8

const (
	Nonterminal NodeKind = iota // grammar symbol such as "S" or "N'"
	Terminal                    // consumed token, labeled with its spelling
	Epsilon                     // empty alternative, labeled "ε"
)

var nodeKindNames = [...]string{
	Nonterminal: "nonterminal",
	Terminal:    "terminal",
	Epsilon:     "epsilon",
}

// String returns the string representation of the node kind.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", k)
}

type node struct {
	label    string
	kind     NodeKind
	parent   NodeID
	children []NodeID
}

// Tree is a parse tree stored as an arena of nodes. It is built by a
// single Parse call and read-only afterwards.
type Tree struct {
	nodes []node
	root  NodeID
}

func newTree() *Tree {
	return &Tree{root: NoNode}
}

// add creates a detached node and returns its id.
func (t *Tree) add(label string, kind NodeKind) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{label: label, kind: kind, parent: NoNode})
	return id
}

// attach appends child as the last child of parent.
func (t *Tree) attach(parent, child NodeID) {
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	t.nodes[child].parent = parent
}

// Root returns the root node.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Label returns the grammar symbol or terminal spelling of id.
func (t *Tree) Label(id NodeID) string { return t.nodes[id].label }

// Kind returns the kind of id.
func (t *Tree) Kind(id NodeID) NodeKind { return t.nodes[id].kind }

// Parent returns the parent of id, or NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].parent }

// NumChildren returns the number of children of id.
func (t *Tree) NumChildren(id NodeID) int { return len(t.nodes[id].children) }

// Child returns the i-th child of id.
func (t *Tree) Child(id NodeID, i int) NodeID { return t.nodes[id].children[i] }

// Children returns a copy of the children of id in production order.
func (t *Tree) Children(id NodeID) []NodeID {
	return append([]NodeID(nil), t.nodes[id].children...)
}

// IsLeaf reports whether id has no children.
func (t *Tree) IsLeaf(id NodeID) bool { return len(t.nodes[id].children) == 0 }
