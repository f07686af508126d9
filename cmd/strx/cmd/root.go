package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strcore/foundation/core/config"
	sclog "github.com/msto63/strcore/foundation/core/log"
	"github.com/msto63/strcore/foundation/utils/allocx"
	"github.com/msto63/strcore/pkg/core/allocation"
	"github.com/msto63/strcore/pkg/core/logging"
)

// app carries flags and the state built from them before a subcommand runs.
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string
	plain     bool

	cfg    *config.Config
	logger *sclog.Logger
	alloc  allocx.Allocator
	out    *renderer
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "strx",
		Short: "strx - bounded ASCII string tools",
		Long: `strx exposes the strcore string primitives on the command line.

Commands:
  prettify  - render byte counts with IEC units
  basename  - last path component
  eol       - normalize line endings to LF
  hash      - MurmurHash2A of text or a file
  tobool    - parse truthy values
  match     - find whole identifiers
  find      - bounded substring search
  replace   - replace every occurrence of a substring
  printf    - format into an allocator-backed string`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $STRX_CONFIG, ./strx.toml, ./strx.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	flags.BoolVar(&a.plain, "plain", false, "disable styled output")

	root.AddCommand(
		newPrettifyCmd(a),
		newBasenameCmd(a),
		newEolCmd(a),
		newHashCmd(a),
		newToBoolCmd(a),
		newMatchCmd(a),
		newFindCmd(a),
		newReplaceCmd(a),
		newPrintfCmd(a),
		newVersionCmd(a),
	)
	return root, a
}

// Execute runs the command line and reports a failure on stderr.
func Execute() error {
	root, a := newRootCmd()
	err := root.Execute()
	if err != nil {
		a.report(root, err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command) error {
	var cfg *config.Config
	var err error
	if a.cfgFile != "" {
		cfg, err = config.LoadWithOptions(a.cfgFile, config.LoadOptions{Format: config.FormatAuto, DotEnv: ".env"})
	} else {
		cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	lc := logging.FromConfig("strx", cfg.Log)
	lc.Output = cmd.ErrOrStderr()
	a.logger = logging.NewLogger(lc)

	a.alloc, err = allocation.Install(cfg.Alloc, a.logger)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.out = newRenderer(cmd.OutOrStdout(), a.plain)
	a.logger.Debug("configuration loaded", logging.KV("source", cfg.Source(), "command", cmd.Name()))
	return nil
}

func (a *app) report(root *cobra.Command, err error) {
	if a.logger != nil {
		a.logger.LogError(err)
	}
	newRenderer(root.ErrOrStderr(), a.plain).Error(err)
}
