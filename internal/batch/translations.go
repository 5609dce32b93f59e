package batch

import (
	"fmt"
	"sort"

	"github.com/spf13/afero"

	"github.com/djangodev/cli/internal/output"
)

// MakeTranslations creates or updates message catalogs for apps (all when
// empty) using the default environment.
//
// When locales is empty, locales are discovered from the locale directory of
// the first application that has one and reused for every later application.
func (d *Driver) MakeTranslations(locales, apps []string) error {
	output.Info("making translations")

	_, selected, err := d.targets(apps)
	if err != nil {
		return err
	}
	envPath := d.layout.EnvironmentPath(d.defaultVersion)

	for _, app := range selected {
		appLog := output.AppLogger(app)
		appLog.Info("processing application")
		appPath := d.layout.AppPath(app)

		if len(locales) == 0 {
			discovered, err := d.discoverLocales(app)
			if err != nil {
				return err
			}
			locales = discovered
		}

		for _, lang := range locales {
			appLog.Info("working on locale", "locale", lang)
			if err := d.fs.MkdirAll(d.layout.MessagesPath(app, lang), 0o755); err != nil {
				return fmt.Errorf("creating messages directory for %s: %w", app, err)
			}
			d.manage(envPath, app, appPath, true, "makemessages", "-l", lang)
			d.manage(envPath, app, appPath, true, "compilemessages", "-l", lang)
		}
	}
	return nil
}

// discoverLocales returns the sorted locale directories of app. An app
// without a locale directory yields none.
func (d *Driver) discoverLocales(app string) ([]string, error) {
	dir := d.layout.LocalePath(app)
	exists, err := afero.DirExists(d.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}
	if !exists {
		return nil, nil
	}

	infos, err := afero.ReadDir(d.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var locales []string
	for _, info := range infos {
		if info.IsDir() {
			locales = append(locales, info.Name())
		}
	}
	sort.Strings(locales)
	output.Debug("discovered locales", "app", app, "locales", locales)
	return locales, nil
}
