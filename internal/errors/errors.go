// Package errors provides the error taxonomy of the djdev CLI.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured, user-facing error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewNotBootstrappedError reports a missing or empty environments directory.
func NewNotBootstrappedError(venvsDir string) error {
	return &DetailError{
		Type:     "not bootstrapped",
		Message:  "Virtual environments are not created.",
		Location: venvsDir,
		Hint:     "Run `djdev bootstrap` to create them.",
		Cause:    ErrNotBootstrapped,
	}
}

// NewNotInitializedError reports a missing applications directory.
func NewNotInitializedError(appsDir string) error {
	return &DetailError{
		Type:     "not initialized",
		Message:  "This directory does not contain a djdev workspace.",
		Location: appsDir,
		Hint:     "Run `djdev bootstrap` to create a workspace in the current directory.",
		Cause:    ErrNotInitialized,
	}
}

// NewNoApplicationsError reports an empty applications directory.
func NewNoApplicationsError(appsDir string) error {
	return &DetailError{
		Type:     "no applications",
		Message:  "Applications directory is empty.",
		Location: appsDir,
		Hint:     "Symlink your apps (and the apps they depend upon) into " + appsDir + ".",
		Cause:    ErrNoApplications,
	}
}

// NewUnknownApplicationError reports requested applications that are not linked.
// The missing names are reported in sorted order.
func NewUnknownApplicationError(missing []string) error {
	names := append([]string(nil), missing...)
	sort.Strings(names)
	return &DetailError{
		Type:    "unknown application",
		Message: fmt.Sprintf("The following apps are not found: `%s`.", strings.Join(names, "`, `")),
		Context: map[string]string{"apps": strings.Join(names, ", ")},
		Cause:   ErrUnknownApplication,
	}
}

// NewUnsupportedOperationError reports an unrecognized command name.
func NewUnsupportedOperationError(name string) error {
	return &DetailError{
		Type:    "unsupported operation",
		Message: fmt.Sprintf("`%s` command is not supported.", name),
		Hint:    "Run `djdev --help` to list the available commands.",
		Cause:   ErrUnsupportedOperation,
	}
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	// Code is the exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is true when the error was already shown to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// IsReported reports whether err is a known operation failure that has
// already been logged where it was detected.
func IsReported(err error) bool {
	return errors.Is(err, ErrOperation)
}
