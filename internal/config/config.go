// Package config provides configuration loading and management.
package config

// Defaults for a fresh workspace.
const (
	DefaultAppsDir          = "apps"
	DefaultVenvsDir         = "venvs"
	DefaultBootstrapFile    = "manage.py"
	DefaultConfigFile       = "djdev.yaml"
	DefaultVersion          = "1.7"
	DefaultLegacyVersion    = "1.6.5"
	DefaultLegacyPackage    = "south==1.0.1"
	DefaultFrameworkPackage = "django"
	DefaultPython           = "python3"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the djdev configuration.
// Loaded from <root>/djdev.yaml; every field is optional.
type Config struct {
	// AppsDir is the directory holding symlinks to the applications.
	// Env: DJDEV_APPS_DIR, Default: apps
	AppsDir string `json:"appsDir,omitempty" yaml:"appsDir,omitempty"`

	// VenvsDir is the directory holding one virtualenv per framework version.
	// Env: DJDEV_VENVS_DIR, Default: venvs
	VenvsDir string `json:"venvsDir,omitempty" yaml:"venvsDir,omitempty"`

	// BootstrapFile is the generated entry script, relative to the root.
	// Default: manage.py
	BootstrapFile string `json:"bootstrapFile,omitempty" yaml:"bootstrapFile,omitempty"`

	// DefaultVersion is the framework version with built-in migrations.
	// Translations run in this environment only.
	// Env: DJDEV_DEFAULT_VERSION, Default: 1.7
	DefaultVersion string `json:"defaultVersion,omitempty" yaml:"defaultVersion,omitempty"`

	// LegacyVersion is the framework version provisioned with LegacyPackage.
	// Env: DJDEV_LEGACY_VERSION, Default: 1.6.5
	LegacyVersion string `json:"legacyVersion,omitempty" yaml:"legacyVersion,omitempty"`

	// LegacyPackage is the pip requirement of the legacy migration tool.
	// Default: south==1.0.1
	LegacyPackage string `json:"legacyPackage,omitempty" yaml:"legacyPackage,omitempty"`

	// FrameworkPackage is the pip name of the framework. Installed as <name>==<version>.
	// Default: django
	FrameworkPackage string `json:"frameworkPackage,omitempty" yaml:"frameworkPackage,omitempty"`

	// Python is the interpreter used to create virtualenvs.
	// Env: DJDEV_PYTHON, Default: python3
	Python string `json:"python,omitempty" yaml:"python,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `djdev config init` to generate the initial config file.
func DefaultConfig() *Config {
	return (&Config{}).WithDefaults()
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	setDefault(&out.AppsDir, DefaultAppsDir)
	setDefault(&out.VenvsDir, DefaultVenvsDir)
	setDefault(&out.BootstrapFile, DefaultBootstrapFile)
	setDefault(&out.DefaultVersion, DefaultVersion)
	setDefault(&out.LegacyVersion, DefaultLegacyVersion)
	setDefault(&out.LegacyPackage, DefaultLegacyPackage)
	setDefault(&out.FrameworkPackage, DefaultFrameworkPackage)
	setDefault(&out.Python, DefaultPython)
	return &out
}

// Versions returns the framework versions provisioned by bootstrap,
// default version first.
func (c *Config) Versions() []string {
	if c.LegacyVersion == "" || c.LegacyVersion == c.DefaultVersion {
		return []string{c.DefaultVersion}
	}
	return []string{c.DefaultVersion, c.LegacyVersion}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
