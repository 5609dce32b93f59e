package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/djangodev/cli/internal/output"
)

// MigrationState describes which migration folders an application has.
type MigrationState int

const (
	NoMigrations MigrationState = iota
	LegacyOnly
	NativeOnly
	BothMigrations
)

func (s MigrationState) String() string {
	switch s {
	case LegacyOnly:
		return "legacy-only"
	case NativeOnly:
		return "native-only"
	case BothMigrations:
		return "both"
	default:
		return "none"
	}
}

// State reports the migration folders present for app.
func (d *Driver) State(app string) (MigrationState, error) {
	legacy, err := afero.DirExists(d.fs, d.layout.LegacyMigrationsPath(app))
	if err != nil {
		return NoMigrations, err
	}
	native, err := afero.DirExists(d.fs, d.layout.NativeMigrationsPath(app))
	if err != nil {
		return NoMigrations, err
	}
	switch {
	case legacy && native:
		return BothMigrations, nil
	case legacy:
		return LegacyOnly, nil
	case native:
		return NativeOnly, nil
	}
	return NoMigrations, nil
}

// AddMigrations creates migrations for apps (all when empty) in every
// environment: native migrations in the default environment, legacy ones
// everywhere else. With relocateLegacy, an application whose legacy
// migrations still live in the native folder has them moved first.
func (d *Driver) AddMigrations(apps []string, relocateLegacy bool) error {
	output.Info("making migrations")

	envs, selected, err := d.targets(apps)
	if err != nil {
		return err
	}
	defaultPath := d.layout.EnvironmentPath(d.defaultVersion)

	for _, env := range envs {
		for _, app := range selected {
			if err := d.addMigrations(env.Path, env.Path == defaultPath, app, relocateLegacy); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Driver) addMigrations(envPath string, native bool, app string, relocateLegacy bool) error {
	appLog := output.AppLogger(app)
	appLog.Info("processing application", "venv", envPath)

	before, err := d.State(app)
	if err != nil {
		return err
	}
	appLog.Debug("migration state", "state", before)

	legacyPath := d.layout.LegacyMigrationsPath(app)
	nativePath := d.layout.NativeMigrationsPath(app)
	legacyExists := before == LegacyOnly || before == BothMigrations

	if relocateLegacy && !legacyExists && before == NativeOnly {
		appLog.Info("relocating legacy migrations", "path", legacyPath)
		if err := copyTree(d.fs, nativePath, legacyPath); err != nil {
			// A partial copy would read as existing legacy migrations next time.
			if rmErr := d.fs.RemoveAll(legacyPath); rmErr != nil {
				appLog.Warn("removing partial legacy migrations failed", "path", legacyPath, "error", rmErr)
			}
			return err
		}
		if err := d.fs.RemoveAll(nativePath); err != nil {
			return fmt.Errorf("removing %s: %w", nativePath, err)
		}
		legacyExists = true
	}

	if native {
		d.manage(envPath, app, d.layout.Root, false, "makemigrations", app)
	} else {
		flag := "--auto"
		if !legacyExists {
			flag = "--init"
		}
		d.manage(envPath, app, d.layout.Root, false, "schemamigration", app, flag)
	}

	if err := PatchMigrations(d.fs, nativePath); err != nil {
		return err
	}

	after, err := d.State(app)
	if err != nil {
		return err
	}
	appLog.Debug("migration state", "state", after)
	return nil
}

// copyTree copies the directory src to dst, which must not exist. Symbolic
// links are followed, so linked files and directories are copied as content.
func copyTree(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if !info.IsDir() {
		return copyFile(fs, src, dst, info.Mode().Perm())
	}

	if err := fs.MkdirAll(dst, info.Mode().Perm()|0o700); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	entries, err := afero.ReadDir(fs, src)
	if err != nil {
		return fmt.Errorf("listing %s: %w", src, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if err := copyTree(fs, filepath.Join(src, name), filepath.Join(dst, name)); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(fs afero.Fs, src, dst string, perm os.FileMode) error {
	content, err := afero.ReadFile(fs, src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := afero.WriteFile(fs, dst, content, perm); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
