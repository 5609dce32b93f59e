package cmd

import (
	"github.com/spf13/cobra"

	"github.com/djangodev/cli/internal/cmdtypes"
	"github.com/djangodev/cli/internal/cmdutil"
)

func newMakeTransCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var appsFlags cmdutil.AppsFlags

	c := &cobra.Command{
		Use: "make_trans [locales...]",
		Long: `Create or update translation files for the given locales, for example
"ru en". Without locales, the locales already present in the applications
are updated.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			driver := cmdutil.NewWorkspace(gc).Driver
			if err := driver.MakeTranslations(args, appsFlags.Apps); err != nil {
				return err
			}
			printSteps(c, driver.Steps())
			return nil
		},
	}

	appsFlags.AddTo(c)

	return c
}
