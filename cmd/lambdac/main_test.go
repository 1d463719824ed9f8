package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/lambdatree/internal/config"
)

func captureOutput(t *testing.T, fn func() int) (code int, stdout string, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdout: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stderr: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code = fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)
	_ = rOut.Close()
	_ = rErr.Close()

	return code, string(outBytes), string(errBytes)
}

// isolateConfig keeps user and environment config files out of a test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	t.Setenv("HOME", t.TempDir())
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	isolateConfig(t)
	return captureOutput(t, func() int { return run(args) })
}

func TestParseOutline(t *testing.T) {
	code, out, errOut := runCLI(t, "parse", "--format", "outline", "lambda x, y: x + y")
	if code != 0 {
		t.Fatalf("parse exit=%d\nstderr:\n%s", code, errOut)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	for _, want := range []string{"S\n  lambda\n  V\n", "  :\n  S'\n", "ε\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("outline missing %q:\n%s", want, out)
		}
	}
}

func TestParseTextDefault(t *testing.T) {
	code, out, errOut := runCLI(t, "parse", "lambda: True")
	if code != 0 {
		t.Fatalf("parse exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.HasPrefix(out, "S\n") || !strings.Contains(out, "True") {
		t.Fatalf("text tree output:\n%s", out)
	}
}

func TestParseNoEpsilon(t *testing.T) {
	code, out, errOut := runCLI(t, "parse", "--format", "outline", "--no-epsilon", "lambda x: x")
	if code != 0 {
		t.Fatalf("parse exit=%d\nstderr:\n%s", code, errOut)
	}
	if strings.Contains(out, "ε") {
		t.Fatalf("ε leaf written with --no-epsilon:\n%s", out)
	}
}

func TestParseFromFileToFile(t *testing.T) {
	in := writeTempFile(t, "expr.txt", "lambda a:\r\n  a // 2\n")
	dot := filepath.Join(t.TempDir(), "tree.dot")

	code, out, errOut := runCLI(t, "parse", "-f", in, "--format", "dot", "-o", dot)
	if code != 0 {
		t.Fatalf("parse exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != "" {
		t.Fatalf("stdout not empty with -o:\n%s", out)
	}
	data, err := os.ReadFile(dot)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), `digraph "ParseTree" {`) || !strings.Contains(string(data), `label="//"`) {
		t.Fatalf("DOT file:\n%s", data)
	}
}

func TestParseStart(t *testing.T) {
	code, out, errOut := runCLI(t, "parse", "--format", "outline", "--start", "E", "a and not b")
	if code != 0 {
		t.Fatalf("parse exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.HasPrefix(out, "E\n") || !strings.Contains(out, "not\n") {
		t.Fatalf("outline:\n%s", out)
	}

	code, _, errOut = runCLI(t, "parse", "--start", "E", "a+")
	if code != 1 {
		t.Fatalf("dangling operator exit=%d", code)
	}
	if !strings.Contains(errOut, "unexpected End in Q") {
		t.Fatalf("stderr:\n%s", errOut)
	}

	code, _, errOut = runCLI(t, "parse", "--start", "Z", "a")
	if code != 1 || !strings.Contains(errOut, `unknown nonterminal "Z"`) {
		t.Fatalf("exit=%d stderr:\n%s", code, errOut)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing body", []string{"parse", "lambda x:"}, "unexpected End in S'"},
		{"lexical", []string{"parse", "lambda x: x @ 1"}, "unexpected character '@'"},
		{"empty", []string{"check", ""}, "empty source"},
		{"format", []string{"parse", "--format", "svg", "lambda: x"}, `unknown output format "svg"`},
		{"missing file", []string{"parse", "-f", "/nonexistent/expr.txt"}, "no such file"},
		{"file and expr", []string{"check", "-f", "x.txt", "lambda: x"}, "both an expression and -f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			if code != 1 {
				t.Fatalf("exit=%d, want 1\nstdout:\n%s", code, out)
			}
			if !strings.Contains(errOut, tt.wantErr) {
				t.Fatalf("stderr missing %q:\n%s", tt.wantErr, errOut)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	code, out, errOut := runCLI(t, "check", "lambda: x")
	if code != 0 {
		t.Fatalf("check exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != "ok (25 nodes)\n" {
		t.Fatalf("check output = %q", out)
	}
}

func TestTokens(t *testing.T) {
	code, out, errOut := runCLI(t, "tokens", "lambda x: x == 92var")
	if code != 0 {
		t.Fatalf("tokens exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{"POSITION", "lambda", "==", "92var", "End"} {
		if !strings.Contains(out, want) {
			t.Fatalf("token table missing %q:\n%s", want, out)
		}
	}
}

func TestTokensStopsAtLexicalError(t *testing.T) {
	code, out, errOut := runCLI(t, "tokens", "x = 1")
	if code != 1 {
		t.Fatalf("tokens exit=%d", code)
	}
	if !strings.Contains(out, "Variable") {
		t.Fatalf("tokens before the error missing:\n%s", out)
	}
	if !strings.Contains(errOut, "malformed operator") {
		t.Fatalf("stderr:\n%s", errOut)
	}
}

func TestConfigFile(t *testing.T) {
	cfg := writeTempFile(t, "lambdatree.yaml", "parser:\n  epsilon_nodes: false\noutput:\n  format: json\n")

	code, out, errOut := runCLI(t, "--config", cfg, "parse", "lambda: x")
	if code != 0 {
		t.Fatalf("parse exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, `"label": "S"`) {
		t.Fatalf("config output format ignored:\n%s", out)
	}
	if strings.Contains(out, "ε") {
		t.Fatalf("config epsilon_nodes ignored:\n%s", out)
	}

	code, _, errOut = runCLI(t, "--config", writeTempFile(t, "bad.toml", "[log]\nlevel = \"loud\"\n"), "check", "lambda: x")
	if code != 1 || !strings.Contains(errOut, "invalid log.level") {
		t.Fatalf("exit=%d stderr:\n%s", code, errOut)
	}
}

func TestVerboseLogsRun(t *testing.T) {
	code, _, errOut := runCLI(t, "-v", "check", "lambda: x")
	if code != 0 {
		t.Fatalf("check exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{"parse complete", "nodes=25", "run="} {
		if !strings.Contains(errOut, want) {
			t.Fatalf("debug log missing %q:\n%s", want, errOut)
		}
	}
}

func TestStdinInput(t *testing.T) {
	isolateConfig(t)
	var out, errOut bytes.Buffer
	root := newRootCmd(&app{})
	root.SetIn(strings.NewReader("lambda n: n % 2 == 0\n"))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"check"})

	if err := root.Execute(); err != nil {
		t.Fatalf("check: %v\nstderr:\n%s", err, errOut.String())
	}
	if !strings.HasPrefix(out.String(), "ok (") {
		t.Fatalf("check output = %q", out.String())
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	if code != 0 {
		t.Fatalf("version exit=%d", code)
	}
	if !strings.Contains(out, "lambdac version "+Version) || !strings.Contains(out, "Go Version:") {
		t.Fatalf("version output:\n%s", out)
	}
}
