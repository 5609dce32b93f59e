// Package venv provisions per-version virtual environments and runs
// framework management commands inside them.
package venv

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/djangodev/cli/internal/config"
	"github.com/djangodev/cli/internal/output"
	"github.com/djangodev/cli/internal/shell"
)

// ErrExists is returned by Create when the environment directory already exists.
var ErrExists = errors.New("virtual environment already exists")

// Provisioner creates environments, installs packages into them and runs
// manage.py commands against them.
type Provisioner struct {
	fs     afero.Fs
	runner shell.Runner
	layout config.Layout
	python string
}

// NewProvisioner creates a provisioner. python is the interpreter used to
// create new environments.
func NewProvisioner(fs afero.Fs, runner shell.Runner, layout config.Layout, python string) *Provisioner {
	if python == "" {
		python = config.DefaultPython
	}
	return &Provisioner{fs: fs, runner: runner, layout: layout, python: python}
}

// Create creates the environment for version. An existing environment
// directory yields its path and ErrExists, which callers treat as a skip.
func (p *Provisioner) Create(version string) (string, error) {
	path := p.layout.EnvironmentPath(version)

	exists, err := afero.Exists(p.fs, path)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	if exists {
		return path, ErrExists
	}

	if err := p.fs.MkdirAll(p.layout.VenvsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", p.layout.VenvsDir, err)
	}

	line := shell.Join(p.python, "-m", "venv", "--symlinks", path)
	if !p.runner.Run(shell.Command{Line: line}) {
		return "", fmt.Errorf("creating virtual environment %s failed", path)
	}
	return path, nil
}

// Install installs or upgrades a package requirement into the environment at envPath.
func (p *Provisioner) Install(requirement, envPath string) bool {
	output.Debug("installing package", "package", requirement, "venv", envPath)
	line := shell.Chain(activate(envPath), shell.Join("pip", "install", "-U", requirement))
	return p.runner.Run(shell.Command{Line: line})
}

// Manage runs `python manage.py <args...>` in the environment at envPath,
// with dir as the working directory of the subprocess.
func (p *Provisioner) Manage(envPath, dir string, args []string, verbose bool) bool {
	output.Debug("running manage command", "args", args, "venv", envPath, "dir", dir)
	line := shell.Chain(
		activate(envPath),
		shell.Join(append([]string{"python", p.layout.BootstrapFile}, args...)...),
	)
	return p.runner.Run(shell.Command{Line: line, Dir: dir, Verbose: verbose})
}

func activate(envPath string) string {
	return shell.Join(".", filepath.Join(envPath, "bin", "activate"))
}

// Provision creates the environment for version, tolerating an existing one,
// then installs every requirement into it. Failed installs are logged and do
// not stop the remaining ones.
func (p *Provisioner) Provision(version string, requirements ...string) (string, error) {
	envLog := output.EnvLogger(version)
	envLog.Info("creating virtual environment")

	path, err := p.Create(version)
	switch {
	case errors.Is(err, ErrExists):
		envLog.Warn("virtual environment directory already exists. Skipped.", "path", path)
	case err != nil:
		return "", err
	}

	for _, req := range requirements {
		outcome := output.StepOK
		if !p.Install(req, path) {
			outcome = output.StepFailed
		}
		envLog.Info(output.FormatStep("pip install -U "+req, outcome))
	}
	return path, nil
}

// Requirement returns the pip requirement pinning pkg to version.
func Requirement(pkg, version string) string {
	return pkg + "==" + version
}
