package cmd

import (
	"errors"

	oerrors "github.com/djangodev/cli/internal/errors"
)

// ExitCodeFromError determines the process exit code for an error returned
// by the root command.
//
// Operation failures are logged where they are detected and the process
// still exits successfully.
func ExitCodeFromError(err error) int {
	if err == nil {
		return oerrors.ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if oerrors.IsReported(err) {
		return oerrors.ExitSuccess
	}
	return oerrors.ExitGeneralError
}

// ShouldPrint reports whether err still has to be printed by the caller.
func ShouldPrint(err error) bool {
	if err == nil {
		return false
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return !exitErr.Printed
	}
	return !oerrors.IsReported(err)
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case oerrors.ExitSuccess:
		return "Success"
	case oerrors.ExitGeneralError:
		return "General Error"
	case oerrors.ExitUsageError:
		return "Usage Error"
	default:
		return "Unknown"
	}
}
