package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/djangodev/cli/internal/cmdtypes"
	"github.com/djangodev/cli/internal/cmdutil"
	"github.com/djangodev/cli/internal/output"
	"github.com/djangodev/cli/internal/venv"
)

func newBootstrapCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use: "bootstrap",
		Long: `Create a virtual environment per Django version and an empty directory
for symlinks to your applications.

Existing virtual environments are kept and their packages upgraded.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ws := cmdutil.NewWorkspace(gc)
			if err := runBootstrap(c.Context(), ws); err != nil {
				return err
			}
			fmt.Fprint(c.OutOrStdout(), output.RenderWorkspaceTree(filepath.Base(ws.Layout.Root), workspaceEntries(ws)))
			return nil
		},
	}
}

func runBootstrap(ctx context.Context, ws *cmdutil.Workspace) error {
	output.Info("bootstrapping djdev directory structure", "root", ws.Layout.Root)

	for _, version := range ws.Config.Versions() {
		requirements := []string{venv.Requirement(ws.Config.FrameworkPackage, version)}
		if version != ws.Config.DefaultVersion && ws.Config.LegacyPackage != "" {
			requirements = append(requirements, ws.Config.LegacyPackage)
		}

		err := output.RunWithSpinner(ctx, func() error {
			_, err := ws.Provisioner.Provision(version, requirements...)
			return err
		}, output.WithTitle(fmt.Sprintf("Provisioning Django %s", version)))
		if err != nil {
			return err
		}
	}

	appsDir, err := ws.Catalog.MakeAppsDir()
	if err != nil {
		return err
	}
	output.Info("now you may symlink (ln -s) your apps, and the apps they depend upon, into the applications directory",
		"path", appsDir)
	return nil
}

// workspaceEntries describes the provisioned layout relative to the root.
func workspaceEntries(ws *cmdutil.Workspace) map[string]string {
	entries := make(map[string]string)
	add := func(path, desc string) {
		rel, err := filepath.Rel(ws.Layout.Root, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			return
		}
		entries[rel+"/"] = desc
	}

	for _, version := range ws.Config.Versions() {
		desc := "Django " + version
		if version != ws.Config.DefaultVersion && ws.Config.LegacyPackage != "" {
			desc += ", " + ws.Config.LegacyPackage
		}
		add(ws.Layout.EnvironmentPath(version), desc)
	}
	add(ws.Layout.AppsDir, "symlink applications here")
	return entries
}
