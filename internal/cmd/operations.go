package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/djangodev/cli/internal/cmdtypes"
	"github.com/djangodev/cli/internal/output"
)

// operation is a named workspace operation exposed as a top-level command.
type operation struct {
	name  string
	short string
	build func(gc *cmdtypes.GlobalConfig) *cobra.Command
}

// operations is the closed set of workspace operations.
var operations = []operation{
	{name: "bootstrap", short: "Create the djdev directory structure in the workspace", build: newBootstrapCmd},
	{name: "list_venvs", short: "Print out the available virtual environments", build: newListVenvsCmd},
	{name: "list_apps", short: "Print out the available applications", build: newListAppsCmd},
	{name: "add_migrations", short: "Add both South and Django 1.7+ migrations for applications", build: newAddMigrationsCmd},
	{name: "make_trans", short: "Create translation (.po, .mo) files for the given locales", build: newMakeTransCmd},
}

// command builds the cobra command for op.
func (op operation) command(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := op.build(gc)
	c.Short = op.short
	run := c.RunE
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runOperation(op.name, func() error { return run(cmd, args) })
	}
	return c
}

// runOperation runs fn as the named operation and reports completion.
func runOperation(name string, fn func() error) error {
	output.Debug("requested operation", "operation", name)
	if err := fn(); err != nil {
		return err
	}
	output.Info(output.FormatCheckmark("Done."))
	return nil
}

// printSteps writes the batch summary table to the command output.
func printSteps(c *cobra.Command, steps []output.StepResult) {
	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(c.OutOrStdout(), output.RenderStepTable(steps))
}
