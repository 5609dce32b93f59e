package config

import (
	"os"
	"path/filepath"

	"github.com/djangodev/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveRoot resolves the workspace root using precedence:
// (1) --root flag, (2) DJDEV_ROOT env, (3) the working directory.
// The result is absolute.
func ResolveRoot(flagValue string) (ResolvedValue, error) {
	result := ResolvedValue{Key: "root", Shadowed: make(map[ConfigSource]string)}

	cwd, err := DefaultRoot()
	if err != nil {
		return result, err
	}
	envValue := os.Getenv("DJDEV_ROOT")

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = cwd
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = cwd
	default:
		result.Value = cwd
		result.Source = SourceDefault
	}

	expanded, err := ExpandPath(result.Value)
	if err != nil {
		return result, err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return result, err
	}
	result.Value = abs

	return result, nil
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) DJDEV_CONFIG env, (3) <root>/djdev.yaml.
func ResolveConfigPath(flagValue, root string) ResolvedValue {
	result := ResolvedValue{Key: "config", Shadowed: make(map[ConfigSource]string)}

	envValue := os.Getenv("DJDEV_CONFIG")
	defaultPath := filepath.Join(root, DefaultConfigFile)

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
