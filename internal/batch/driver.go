// Package batch runs management commands across the environments and
// applications of a workspace.
package batch

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/djangodev/cli/internal/config"
	"github.com/djangodev/cli/internal/output"
	"github.com/djangodev/cli/internal/shell"
	"github.com/djangodev/cli/internal/workspace"
)

// Catalog lists the environments and applications a batch runs over.
type Catalog interface {
	ListEnvironments() ([]workspace.Environment, error)
	ListApplications(filter []string) ([]string, error)
}

// Manager runs manage.py commands inside an environment.
type Manager interface {
	Manage(envPath, dir string, args []string, verbose bool) bool
}

// Driver runs translation and migration batches.
type Driver struct {
	fs             afero.Fs
	catalog        Catalog
	manager        Manager
	layout         config.Layout
	defaultVersion string

	steps []output.StepResult
}

// NewDriver creates a driver. Single-environment batches run against the
// environment for defaultVersion.
func NewDriver(fs afero.Fs, catalog Catalog, manager Manager, layout config.Layout, defaultVersion string) *Driver {
	if defaultVersion == "" {
		defaultVersion = config.DefaultVersion
	}
	return &Driver{
		fs:             fs,
		catalog:        catalog,
		manager:        manager,
		layout:         layout,
		defaultVersion: defaultVersion,
	}
}

// targets validates environments, then applications.
func (d *Driver) targets(apps []string) ([]workspace.Environment, []string, error) {
	envs, err := d.catalog.ListEnvironments()
	if err != nil {
		return nil, nil, err
	}
	selected, err := d.catalog.ListApplications(apps)
	if err != nil {
		return nil, nil, err
	}
	return envs, selected, nil
}

// Steps returns the outcome of every management command run so far.
func (d *Driver) Steps() []output.StepResult {
	return d.steps
}

// manage runs a management command for app. A failure is logged and
// recorded, never returned.
func (d *Driver) manage(envPath, app, dir string, verbose bool, args ...string) {
	step := output.StepResult{
		Env:     filepath.Base(envPath),
		App:     app,
		Step:    shell.Join(args...),
		Outcome: output.StepOK,
	}
	if !d.manager.Manage(envPath, dir, args, verbose) {
		step.Outcome = output.StepFailed
		output.Error("management command failed", "command", step.Step, "venv", envPath)
	}
	d.steps = append(d.steps, step)
}
