package cmdutil

import (
	"github.com/spf13/afero"

	"github.com/djangodev/cli/internal/batch"
	"github.com/djangodev/cli/internal/cmdtypes"
	"github.com/djangodev/cli/internal/config"
	"github.com/djangodev/cli/internal/shell"
	"github.com/djangodev/cli/internal/templates"
	"github.com/djangodev/cli/internal/venv"
	"github.com/djangodev/cli/internal/workspace"
)

// Workspace holds the services a command works with, wired from the
// resolved global configuration.
type Workspace struct {
	Config      *config.Config
	Layout      config.Layout
	Fs          afero.Fs
	Catalog     *workspace.Catalog
	Provisioner *venv.Provisioner
	Driver      *batch.Driver
}

// NewWorkspace wires the workspace services for gc.
func NewWorkspace(gc *cmdtypes.GlobalConfig) *Workspace {
	cfg := gc.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg = cfg.WithDefaults()

	fs := gc.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	var runner shell.Runner = gc.Runner
	if runner == nil {
		runner = shell.NewExecRunner()
	}

	layout := gc.Layout
	script := templates.NewGenerator(fs, layout.BootstrapFile, layout.AppsDir)
	catalog := workspace.NewCatalog(fs, layout, script)
	provisioner := venv.NewProvisioner(fs, runner, layout, cfg.Python)

	return &Workspace{
		Config:      cfg,
		Layout:      layout,
		Fs:          fs,
		Catalog:     catalog,
		Provisioner: provisioner,
		Driver:      batch.NewDriver(fs, catalog, provisioner, layout, cfg.DefaultVersion),
	}
}
