package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for djdev configuration.
const envPrefix = "DJDEV"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// Set up environment variable bindings
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	_ = v.BindEnv("appsDir", "DJDEV_APPS_DIR")
	_ = v.BindEnv("venvsDir", "DJDEV_VENVS_DIR")
	_ = v.BindEnv("defaultVersion", "DJDEV_DEFAULT_VERSION")
	_ = v.BindEnv("legacyVersion", "DJDEV_LEGACY_VERSION")
	_ = v.BindEnv("python", "DJDEV_PYTHON")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// A missing file is not an error. Environment variables take precedence
// over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	if expandedPath != "" {
		l.v.SetConfigFile(expandedPath)
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
			// Config file not found is OK, we'll use defaults + env vars
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
