package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/lambdatree/internal/config"
	"github.com/you-not-fish/lambdatree/internal/logging"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	verbose  bool

	cfg   *config.Config
	log   *log.Logger
	runID string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lambdac",
		Short: "Scan and parse lambda expressions",
		Long: `lambdac scans and parses single-line lambda expressions such as

  lambda x, y: x + y == 3 and not z

and prints their concrete parse tree.

Commands:
  tokens   - print the token stream
  parse    - print the parse tree (text, outline, dot, json, yaml)
  check    - report whether the input parses`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $LAMBDATREE_CONFIG or ./lambdatree.toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")

	root.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	lc := logging.LoggerConfig{
		Name:       "lambdac",
		Level:      a.cfg.Log.Level,
		Format:     a.cfg.Log.Format,
		Timestamps: a.cfg.Log.Timestamps,
		Output:     cmd.ErrOrStderr(),
	}
	if a.logLevel != "" {
		lc.Level = a.logLevel
	}
	if a.verbose {
		lc.Level = "debug"
	}
	a.log, a.runID = logging.WithRun(logging.New(lc))
	a.log.Debug("configuration loaded", "config", a.cfgFile, "level", lc.Level)
	return nil
}

// reportError writes err to stderr through the logger when one exists.
func (a *app) reportError(cmd *cobra.Command, err error) {
	if a.log != nil {
		a.log.Error(err.Error())
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
}
