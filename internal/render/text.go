package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/you-not-fish/lambdatree/internal/syntax"
)

type palette struct {
	enabled     bool
	nonterminal lipgloss.Style
	terminal    lipgloss.Style
	epsilon     lipgloss.Style
	branch      lipgloss.Style
}

func newPalette(w io.Writer, color bool) palette {
	if !color {
		return palette{}
	}
	r := lipgloss.NewRenderer(w)
	return palette{
		enabled:     true,
		nonterminal: r.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		terminal:    r.NewStyle().Foreground(lipgloss.Color("42")),
		epsilon:     r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		branch:      r.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

func (p palette) label(t *syntax.Tree, id syntax.NodeID) string {
	s := t.Label(id)
	if !p.enabled {
		return s
	}
	switch t.Kind(id) {
	case syntax.Terminal:
		return p.terminal.Render(s)
	case syntax.Epsilon:
		return p.epsilon.Render(s)
	}
	return p.nonterminal.Render(s)
}

// FprintText writes t as a box-drawn tree.
func FprintText(w io.Writer, t *syntax.Tree, opts Options) error {
	p := newPalette(w, opts.Color)
	root := p.build(t, t.Root())
	_, err := io.WriteString(w, root.String()+"\n")
	return err
}

func (p palette) build(t *syntax.Tree, id syntax.NodeID) *tree.Tree {
	n := tree.Root(p.label(t, id))
	if p.enabled {
		n.EnumeratorStyle(p.branch)
	}
	for _, c := range t.Children(id) {
		if t.IsLeaf(c) {
			n.Child(p.label(t, c))
			continue
		}
		n.Child(p.build(t, c))
	}
	return n
}
