package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/lambdatree/internal/syntax"
)

func newCheckCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check [expr]",
		Short: "Report whether the input parses",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.parse(cmd, args, file, syntax.SymS, a.cfg.Epsilon())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok (%d nodes)\n", tree.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the expression from a file")
	return cmd
}
