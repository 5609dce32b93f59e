package cmd

import (
	"github.com/spf13/cobra"

	"github.com/djangodev/cli/internal/cmdtypes"
	"github.com/djangodev/cli/internal/cmdutil"
	"github.com/djangodev/cli/internal/output"
)

func newListVenvsCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:  "list_venvs",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			output.Info("listing known virtual environments")
			envs, err := cmdutil.NewWorkspace(gc).Catalog.ListEnvironments()
			if err != nil {
				return err
			}
			for _, env := range envs {
				output.Info(output.FormatFound(env.Version))
			}
			return nil
		},
	}
}

func newListAppsCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:  "list_apps",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			output.Info("listing known applications")
			apps, err := cmdutil.NewWorkspace(gc).Catalog.ListApplications(nil)
			if err != nil {
				return err
			}
			for _, app := range apps {
				output.Info(output.FormatFound(app))
			}
			return nil
		},
	}
}
