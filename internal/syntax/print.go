package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented outline of t to w, one node per line.
func Fprint(w io.Writer, t *Tree) error {
	p := &printer{w: w}
	Walk(t, func(id NodeID, depth int) bool {
		p.indent = depth
		p.printf("%s\n", t.Label(id))
		return p.err == nil
	})
	return p.err
}

type printer struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}
