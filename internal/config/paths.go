package config

import (
	"os"
	"path/filepath"
)

// Workspace subfolder names inside an application.
const (
	LegacyMigrationsDir = "south_migrations"
	NativeMigrationsDir = "migrations"
	LocaleDir           = "locale"
	MessagesDir         = "LC_MESSAGES"
)

// Layout contains the absolute filesystem paths of a workspace.
type Layout struct {
	// Root is the workspace root (the working directory by default).
	Root string

	// AppsDir holds the application symlinks.
	AppsDir string

	// VenvsDir holds one environment per framework version.
	VenvsDir string

	// BootstrapFile is the generated manage.py.
	BootstrapFile string
}

// NewLayout derives a Layout from root and cfg. Relative config paths are
// resolved against root.
func NewLayout(root string, cfg *Config) Layout {
	cfg = cfg.WithDefaults()
	return Layout{
		Root:          root,
		AppsDir:       underRoot(root, cfg.AppsDir),
		VenvsDir:      underRoot(root, cfg.VenvsDir),
		BootstrapFile: underRoot(root, cfg.BootstrapFile),
	}
}

// EnvironmentPath returns the environment directory for a framework version.
func (l Layout) EnvironmentPath(version string) string {
	return filepath.Join(l.VenvsDir, version)
}

// AppPath returns the directory of an application.
func (l Layout) AppPath(name string) string {
	return filepath.Join(l.AppsDir, name)
}

// LegacyMigrationsPath returns the legacy (South) migrations folder of an application.
func (l Layout) LegacyMigrationsPath(app string) string {
	return filepath.Join(l.AppPath(app), LegacyMigrationsDir)
}

// NativeMigrationsPath returns the built-in migrations folder of an application.
func (l Layout) NativeMigrationsPath(app string) string {
	return filepath.Join(l.AppPath(app), NativeMigrationsDir)
}

// LocalePath returns the locale folder of an application.
func (l Layout) LocalePath(app string) string {
	return filepath.Join(l.AppPath(app), LocaleDir)
}

// MessagesPath returns the message catalog folder of an application locale.
func (l Layout) MessagesPath(app, lang string) string {
	return filepath.Join(l.LocalePath(app), lang, MessagesDir)
}

// DefaultRoot returns the current working directory.
func DefaultRoot() (string, error) {
	return os.Getwd()
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}

func underRoot(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
