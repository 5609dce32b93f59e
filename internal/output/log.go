// Package output provides terminal output utilities.
package output

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	oerrors "github.com/djangodev/cli/internal/errors"
)

// logger is the package logger. Commands log through the helpers below.
var logger *log.Logger

func init() {
	logger = log.NewWithOptions(Stderr(), log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetColorProfile(lipgloss.NewRenderer(os.Stderr).ColorProfile())
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps (--debug).
	Verbose bool

	// Timestamps overrides timestamp reporting. nil means on.
	Timestamps *bool

	// Writer is the log destination. nil means Stderr.
	Writer io.Writer
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the package logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	w := cfg.Writer
	if w == nil {
		w = Stderr()
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "djdev",
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
	if cfg.Writer == nil {
		logger.SetColorProfile(lipgloss.NewRenderer(os.Stderr).ColorProfile())
	}
}

// EnvLogger returns a child logger scoped to an environment version.
func EnvLogger(version string) *log.Logger {
	return logger.WithPrefix("djdev " + StyleDim.Render("venv:") + StyleNoun.Render(version))
}

// AppLogger returns a child logger scoped to an application.
func AppLogger(app string) *log.Logger {
	return logger.WithPrefix("djdev " + StyleDim.Render("app:") + StyleNoun.Render(app))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Report logs err where it was detected and returns it unchanged, so callers
// can write `return output.Report(err)`.
func Report(err error) error {
	if err == nil {
		return nil
	}

	var detail *oerrors.DetailError
	if !errors.As(err, &detail) {
		logger.Error(err.Error())
		return err
	}

	var keyvals []interface{}
	if detail.Location != "" {
		keyvals = append(keyvals, "path", detail.Location)
	}
	logger.Error(detail.Message, keyvals...)
	if detail.Hint != "" {
		logger.Info(detail.Hint)
	}
	return err
}
