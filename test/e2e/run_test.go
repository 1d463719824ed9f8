package e2e

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/lambdatree/internal/render"
	"github.com/you-not-fish/lambdatree/internal/syntax"
)

// TestE2E runs end-to-end tests for all .lambda files in testdata/.
// Each test:
//  1. Runs the full pipeline: scan → parse → render (outline)
//  2. If a .golden file exists, compares the outline against it
//  3. If a .err file exists, expects the pipeline to fail with that message
//  4. Checks that the JSON rendering of a successful parse has the same
//     node count as the tree
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.lambda")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .lambda test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".lambda")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, lambdaFile string) {
	t.Helper()

	src, err := os.ReadFile(lambdaFile)
	if err != nil {
		t.Fatalf("reading input: %v", err)
	}
	base := strings.TrimSuffix(lambdaFile, ".lambda")

	tree, parseErr := syntax.Parse(string(src))

	if wantErr, err := os.ReadFile(base + ".err"); err == nil {
		if parseErr == nil {
			t.Fatalf("parse succeeded, want error %q", strings.TrimSpace(string(wantErr)))
		}
		if got, want := parseErr.Error(), strings.TrimSpace(string(wantErr)); got != want {
			t.Errorf("error mismatch:\ngot:  %q\nwant: %q", got, want)
		}
		return
	}
	if parseErr != nil {
		t.Fatalf("parse: %v", parseErr)
	}

	expected, err := os.ReadFile(base + ".golden")
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	var out bytes.Buffer
	if err := render.Fprint(&out, tree, render.FormatOutline, render.Options{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got, want := out.String(), string(expected); got != want {
		t.Errorf("outline mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	if n := countNodes(syntax.ToJSON(tree, tree.Root())); n != tree.Len() {
		t.Errorf("JSON document has %d nodes, tree has %d", n, tree.Len())
	}
}

func countNodes(n *syntax.JSONNode) int {
	c := 1
	for _, child := range n.Children {
		c += countNodes(child)
	}
	return c
}
