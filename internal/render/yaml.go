package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/lambdatree/internal/syntax"
)

// FprintYAML writes t as a nested YAML document with the same shape as
// the JSON output.
func FprintYAML(w io.Writer, t *syntax.Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(syntax.ToJSON(t, t.Root())); err != nil {
		return err
	}
	return enc.Close()
}
