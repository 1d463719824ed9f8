// Package main implements lambdac, the lambda-expression parser CLI.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line args and returns the process exit code.
func run(args []string) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.reportError(root, err)
		return 1
	}
	return 0
}
