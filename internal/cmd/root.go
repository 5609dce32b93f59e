// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/djangodev/cli/internal/cmd/config"
	"github.com/djangodev/cli/internal/cmdtypes"
	"github.com/djangodev/cli/internal/config"
	oerrors "github.com/djangodev/cli/internal/errors"
	"github.com/djangodev/cli/internal/output"
)

// rootOptions holds the global flags.
type rootOptions struct {
	debug      bool
	root       string
	config     string
	timestamps bool
}

// NewRootCmd creates the root command for the djdev CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cmdtypes.GlobalConfig{})
}

func newRootCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "djdev <operation>",
		Short: "Tools to facilitate application development for Django",
		Long: `djdev keeps a workspace of symlinked Django applications and one virtual
environment per Django version, and runs translation and migration batches
across them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, opts, gc)
		},
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.Help()
			}
			return unsupportedOperation(args[0])
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Show debug messages while processing")
	rootCmd.PersistentFlags().StringVar(&opts.root, "root", "", "Workspace root (env: DJDEV_ROOT, default: current directory)")
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", "Path to config file (env: DJDEV_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&opts.timestamps, "timestamps", true, "Show timestamps in log output")

	for _, op := range operations {
		rootCmd.AddCommand(op.command(gc))
	}
	rootCmd.AddCommand(configcmd.NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

// initializeGlobals resolves the workspace, loads configuration and sets up
// logging.
func initializeGlobals(c *cobra.Command, opts *rootOptions, gc *cmdtypes.GlobalConfig) error {
	root, err := config.ResolveRoot(opts.root)
	if err != nil {
		return err
	}
	configPath := config.ResolveConfigPath(opts.config, root.Value)

	cfg, err := config.NewLoader().LoadWithDefaults(configPath.Value)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Timestamps: flag (if explicitly set) > config > default (nil = true).
	logCfg := output.LogConfig{Verbose: opts.debug}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(opts.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	config.LogResolvedValues(root, configPath)

	gc.Config = cfg
	gc.Layout = config.NewLayout(root.Value, cfg)
	gc.ConfigPath = configPath.Value
	gc.Verbose = opts.debug
	return nil
}

// unsupportedOperation reports name and fails with a usage exit code.
func unsupportedOperation(name string) error {
	return &oerrors.ExitError{
		Code:    oerrors.ExitUsageError,
		Err:     output.Report(oerrors.NewUnsupportedOperationError(name)),
		Printed: true,
	}
}
