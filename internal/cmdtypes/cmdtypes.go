// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/spf13/afero"

	"github.com/djangodev/cli/internal/config"
	oerrors "github.com/djangodev/cli/internal/errors"
	"github.com/djangodev/cli/internal/shell"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created once by the root command and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	Config     *config.Config
	Layout     config.Layout
	ConfigPath string // resolved --config path
	Verbose    bool

	// Fs and Runner are the filesystem and shell used by commands. Nil
	// values are replaced by the OS filesystem and a bash runner.
	Fs     afero.Fs
	Runner shell.Runner
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess      = oerrors.ExitSuccess
	ExitGeneralError = oerrors.ExitGeneralError
	ExitUsageError   = oerrors.ExitUsageError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
