package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/djangodev/cli/internal/cmdtypes"
	"github.com/djangodev/cli/internal/config"
)

func newShowCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration in effect after applying the config file,
DJDEV_* environment variables and defaults.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg := gc.Config
			if cfg == nil {
				cfg = config.DefaultConfig()
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			fmt.Fprintf(c.OutOrStdout(), "# %s\n%s", gc.ConfigPath, data)
			return nil
		},
	}
}
