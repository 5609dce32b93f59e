package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// versionRegex matches framework release labels such as 1.7 or 1.6.5.
var versionRegex = regexp.MustCompile(`^\d+(\.\d+){1,2}([a-z]+\d*)?$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks a defaulted config. It returns nil or ValidationErrors.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	for field, value := range map[string]string{
		"defaultVersion": cfg.DefaultVersion,
		"legacyVersion":  cfg.LegacyVersion,
	} {
		if !versionRegex.MatchString(value) {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("invalid version %q", value)})
		}
	}

	if cfg.AppsDir != "" && filepath.Clean(cfg.AppsDir) == filepath.Clean(cfg.VenvsDir) {
		errs = append(errs, ValidationError{Field: "venvsDir", Message: "must differ from appsDir"})
	}

	if strings.ContainsAny(cfg.Python, "\n;&|") {
		errs = append(errs, ValidationError{Field: "python", Message: "must be a single interpreter path"})
	}

	if len(errs) == 0 {
		return nil
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}
