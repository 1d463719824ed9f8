package main

import (
	"github.com/spf13/cobra"

	"github.com/you-not-fish/lambdatree/internal/render"
)

func newTokensCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "tokens [expr]",
		Short: "Print the token stream",
		Long: `Scans the input and prints every token up to and including End.

Examples:
  lambdac tokens "lambda x: x // 2"
  lambdac tokens -f expr.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			a.log.Debug("scanning", "bytes", len(src))
			n, err := render.FprintTokens(cmd.OutOrStdout(), src)
			if err != nil {
				return err
			}
			a.log.Debug("scan complete", "tokens", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the expression from a file")
	return cmd
}
