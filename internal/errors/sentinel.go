package errors

import (
	"errors"
	"fmt"
)

// ErrOperation is the common base of every known operation failure. Failures
// wrapping it have already been reported to the user when they reach the top
// level.
var ErrOperation = errors.New("operation failed")

// Sentinel errors for known conditions.
var (
	// ErrNotBootstrapped indicates that no environments exist under venvs/.
	ErrNotBootstrapped = fmt.Errorf("%w: not bootstrapped", ErrOperation)

	// ErrNotInitialized indicates that the applications directory is missing.
	ErrNotInitialized = fmt.Errorf("%w: not initialized", ErrOperation)

	// ErrNoApplications indicates that the applications directory is empty.
	ErrNoApplications = fmt.Errorf("%w: no applications", ErrOperation)

	// ErrUnknownApplication indicates that a requested application is not linked.
	ErrUnknownApplication = fmt.Errorf("%w: unknown application", ErrOperation)

	// ErrUnsupportedOperation indicates an unrecognized command name.
	ErrUnsupportedOperation = fmt.Errorf("%w: unsupported operation", ErrOperation)
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
)
