package templates

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/djangodev/cli/internal/output"
)

// Generator writes the bootstrap script of a workspace.
type Generator struct {
	fs       afero.Fs
	path     string
	appsPath string
}

// NewGenerator creates a generator that writes to path, embedding appsPath
// as the import root.
func NewGenerator(fs afero.Fs, path, appsPath string) *Generator {
	return &Generator{fs: fs, path: path, appsPath: appsPath}
}

// Path returns the bootstrap script path.
func (g *Generator) Path() string {
	return g.path
}

// Write renders the script for apps and overwrites the file. There is no
// backup and no merge.
func (g *Generator) Write(apps []string) error {
	output.Debug("creating bootstrap script", "path", g.path, "apps", len(apps))

	for _, app := range apps {
		if !IsImportableName(app) {
			output.Warn("application name is not an importable package", "app", app)
		}
	}

	content, err := Render(BootstrapData{AppsPath: g.appsPath, Apps: apps})
	if err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(g.path), err)
	}

	if err := afero.WriteFile(g.fs, g.path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.path, err)
	}

	return nil
}
