// Package render serializes parse trees for display: a styled terminal
// tree, a plain outline, Graphviz DOT, JSON, and YAML.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/lambdatree/internal/syntax"
)

// Format selects an output notation.
type Format int

const (
	FormatText    Format = iota // box-drawn tree (lipgloss)
	FormatOutline               // indented labels, one per line
	FormatDOT                   // Graphviz digraph
	FormatJSON
	FormatYAML
)

var formatNames = [...]string{
	FormatText:    "text",
	FormatOutline: "outline",
	FormatDOT:     "dot",
	FormatJSON:    "json",
	FormatYAML:    "yaml",
}

// String returns the flag spelling of the format.
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name to a Format. Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(name, n) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(formatNames[:], ", "))
}

// Options tunes rendering.
type Options struct {
	Color     bool   // style the text tree when the output supports it
	GraphName string // DOT graph name, "ParseTree" if empty
}

// Fprint writes t to w in format f.
func Fprint(w io.Writer, t *syntax.Tree, f Format, opts Options) error {
	switch f {
	case FormatText:
		return FprintText(w, t, opts)
	case FormatOutline:
		return syntax.Fprint(w, t)
	case FormatDOT:
		return FprintDOT(w, t, opts)
	case FormatJSON:
		return syntax.FprintJSON(w, t)
	case FormatYAML:
		return FprintYAML(w, t)
	}
	return fmt.Errorf("unknown output format %v", f)
}
