package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// readInput returns the source text from -f file, the joined arguments,
// or standard input, in that order of preference. The text is passed to
// the scanner unchanged.
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	if file != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("both an expression and -f %s given", file)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
