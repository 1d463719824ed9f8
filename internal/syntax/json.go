package syntax

import (
	"encoding/json"
	"io"
)

// JSONNode is the nested document form of a parse tree node, shared by
// the JSON and YAML encoders.
type JSONNode struct {
	ID       NodeID      `json:"id" yaml:"id"`
	Label    string      `json:"label" yaml:"label"`
	Kind     string      `json:"kind" yaml:"kind"`
	Children []*JSONNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// ToJSON converts the subtree rooted at id to its nested form.
func ToJSON(t *Tree, id NodeID) *JSONNode {
	n := &JSONNode{ID: id, Label: t.Label(id), Kind: t.Kind(id).String()}
	for _, c := range t.nodes[id].children {
		n.Children = append(n.Children, ToJSON(t, c))
	}
	return n
}

// FprintJSON writes a JSON representation of t to w.
func FprintJSON(w io.Writer, t *Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(ToJSON(t, t.Root()))
}
