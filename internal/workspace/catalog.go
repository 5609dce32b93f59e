// Package workspace enumerates the environments and applications of a djdev
// workspace and validates its directory layout.
package workspace

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/afero"

	"github.com/djangodev/cli/internal/config"
	oerrors "github.com/djangodev/cli/internal/errors"
	"github.com/djangodev/cli/internal/output"
)

// Environment is a provisioned per-version runtime.
type Environment struct {
	// Version is the framework version label, also the directory name.
	Version string

	// Path is the environment directory.
	Path string
}

// ScriptWriter regenerates the bootstrap script from the full application list.
type ScriptWriter interface {
	Write(apps []string) error
}

// Catalog lists environments and applications of a workspace.
type Catalog struct {
	fs     afero.Fs
	layout config.Layout
	script ScriptWriter
}

// NewCatalog creates a catalog over layout. script is regenerated on every
// application listing.
func NewCatalog(fs afero.Fs, layout config.Layout, script ScriptWriter) *Catalog {
	return &Catalog{fs: fs, layout: layout, script: script}
}

// ListEnvironments returns the provisioned environments in lexicographic
// order. A missing or empty environments directory is ErrNotBootstrapped.
func (c *Catalog) ListEnvironments() ([]Environment, error) {
	names, err := c.entries(c.layout.VenvsDir)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, output.Report(oerrors.NewNotBootstrappedError(c.layout.VenvsDir))
	}

	envs := make([]Environment, len(names))
	for i, name := range names {
		envs[i] = Environment{Version: name, Path: c.layout.EnvironmentPath(name)}
	}
	return envs, nil
}

// ListApplications returns the linked applications in lexicographic order,
// optionally restricted to filter (empty means all). The bootstrap script is always regenerated
// from the full set, even when filter selects fewer applications.
func (c *Catalog) ListApplications(filter []string) ([]string, error) {
	exists, err := afero.DirExists(c.fs, c.layout.AppsDir)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", c.layout.AppsDir, err)
	}
	if !exists {
		return nil, output.Report(oerrors.NewNotInitializedError(c.layout.AppsDir))
	}

	apps, err := c.entries(c.layout.AppsDir)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, output.Report(oerrors.NewNoApplicationsError(c.layout.AppsDir))
	}

	if len(filter) == 0 {
		if err := c.script.Write(apps); err != nil {
			return nil, err
		}
		return apps, nil
	}

	present := make(map[string]bool, len(apps))
	for _, app := range apps {
		present[app] = true
	}
	wanted := make(map[string]bool, len(filter))
	var missing []string
	for _, name := range filter {
		if !present[name] && !wanted[name] {
			missing = append(missing, name)
		}
		wanted[name] = true
	}
	if len(missing) > 0 {
		return nil, output.Report(oerrors.NewUnknownApplicationError(missing))
	}

	if err := c.script.Write(apps); err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(filter))
	for _, app := range apps {
		if wanted[app] {
			selected = append(selected, app)
		}
	}
	return selected, nil
}

// MakeAppsDir creates the applications directory. An existing directory is
// not an error.
func (c *Catalog) MakeAppsDir() (string, error) {
	output.Info("creating a directory for symlinks to your applications", "path", c.layout.AppsDir)
	if err := c.fs.MkdirAll(c.layout.AppsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", c.layout.AppsDir, err)
	}
	return c.layout.AppsDir, nil
}

// entries returns the sorted entry names of dir. A missing dir yields none.
func (c *Catalog) entries(dir string) ([]string, error) {
	infos, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name()
	}
	sort.Strings(names)
	return names, nil
}
