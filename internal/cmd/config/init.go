package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/djangodev/cli/internal/cmdtypes"
	"github.com/djangodev/cli/internal/config"
)

func newInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new djdev configuration file",
		Long: `Create a new djdev configuration file with default values.

The configuration file is created at <root>/djdev.yaml by default.
Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, gc, force)
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return initCmd
}

func runInit(c *cobra.Command, gc *cmdtypes.GlobalConfig, force bool) error {
	fs := gc.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	path := gc.ConfigPath

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitGeneralError,
			Err:  fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
		}
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	header := []byte("# djdev workspace configuration\n\n")
	data = append(header, data...)

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", path)
	return nil
}
