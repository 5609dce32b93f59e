package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action with a spinner on a terminal.
// Without a terminal, or at debug level, the action runs directly.
// Returns the action's error if any.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// Debug output would interleave with the spinner frames.
	if !IsTTY() || logger.GetLevel() <= log.DebugLevel {
		return action()
	}

	holdStderr()
	defer releaseStderr()

	errCh := make(chan error, 1)

	go func() {
		errCh <- action()
	}()

	var actionErr error
	s := spinner.New().Title(cfg.title).Context(ctx)

	spinnerErr := s.Action(func() {
		select {
		case <-ctx.Done():
			actionErr = ctx.Err()
		case actionErr = <-errCh:
		}
	}).Run()

	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}

	return actionErr
}
