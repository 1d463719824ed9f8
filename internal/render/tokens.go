package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/lambdatree/internal/syntax"
)

// FprintTokens scans src and writes one row per token, End included.
// Rows written before a lexical error are kept; the error is returned.
func FprintTokens(w io.Writer, src string) (int, error) {
	fmt.Fprintf(w, "%-12s %-8s %-10s %s\n", "POSITION", "OFFSET", "TOKEN", "SPELLING")
	fmt.Fprintf(w, "%-12s %-8s %-10s %s\n", strings.Repeat("-", 12), strings.Repeat("-", 8), strings.Repeat("-", 10), strings.Repeat("-", 12))

	s, err := syntax.NewScanner(src)
	if err != nil {
		return 0, err
	}

	n := 0
	for {
		tok := s.Token()
		n++
		fmt.Fprintf(w, "%-12s %-8d %-10s %s\n", tok.Pos, tok.Pos.Offset(), tok.Kind, tok.Spelling())
		if tok.Kind == syntax.End {
			return n, nil
		}
		if err := s.Next(); err != nil {
			return n, err
		}
	}
}
