package cmd

import (
	"github.com/spf13/cobra"

	"github.com/djangodev/cli/internal/cmdtypes"
	"github.com/djangodev/cli/internal/cmdutil"
)

func newAddMigrationsCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		appsFlags     cmdutil.AppsFlags
		relocateFlags cmdutil.RelocateFlags
	)

	c := &cobra.Command{
		Use: "add_migrations",
		Long: `Add migrations for applications in every virtual environment: native
migrations with the default Django version, South migrations with the others.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			driver := cmdutil.NewWorkspace(gc).Driver
			if err := driver.AddMigrations(appsFlags.Apps, relocateFlags.RelocateLegacy); err != nil {
				return err
			}
			printSteps(c, driver.Steps())
			return nil
		},
	}

	appsFlags.AddTo(c)
	relocateFlags.AddTo(c)

	return c
}
