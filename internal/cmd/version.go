package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/djangodev/cli/internal/cmdtypes"
	"github.com/djangodev/cli/internal/config"
	"github.com/djangodev/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show djdev CLI version information.

Displays:
  - djdev CLI version, commit, and build date
  - the Python interpreter used to create virtual environments`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			python := config.DefaultPython
			if gc.Config != nil && gc.Config.Python != "" {
				python = gc.Config.Python
			}
			fmt.Fprintln(c.OutOrStdout(), version.FullVersionString(version.Get(), version.DetectPython(python)))
			return nil
		},
	}
}
