// Package shell runs blocking, line-based shell steps.
package shell

import (
	"errors"
	"io"
	"os"
	osexec "os/exec"
	"strings"

	"github.com/juju/utils/v4/exec"
	"github.com/kballard/go-shellquote"

	"github.com/djangodev/cli/internal/output"
)

// Command is a single shell invocation.
type Command struct {
	// Line is the shell command line, run by bash.
	Line string

	// Dir is the working directory of the subprocess. Empty means the
	// working directory of djdev itself. The process-wide directory is never
	// changed.
	Dir string

	// Verbose streams the command's stdout to the terminal as it is written.
	Verbose bool
}

// Runner runs shell commands. The result is a success flag only: a failed
// step is logged and never aborts the caller.
type Runner interface {
	Run(cmd Command) bool
}

// ExecRunner runs commands through bash.
type ExecRunner struct {
	// Stdout receives the output of verbose commands. nil means os.Stdout.
	Stdout io.Writer

	// Stderr receives the error output of every command. nil means
	// output.Stderr.
	Stderr io.Writer
}

// NewExecRunner creates a runner writing to the process streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: output.Stderr()}
}

// Run executes cmd and waits for it to finish.
func (r *ExecRunner) Run(cmd Command) bool {
	output.Debug("executing shell command", "command", cmd.Line, "dir", cmd.Dir)

	if cmd.Verbose {
		return r.stream(cmd)
	}

	resp, err := exec.RunCommands(exec.RunParams{
		Commands:   cmd.Line,
		WorkingDir: cmd.Dir,
	})
	if err != nil {
		output.Error("shell command could not be started", "command", cmd.Line, "error", err)
		return false
	}

	if len(resp.Stderr) > 0 {
		_, _ = r.stderr().Write(resp.Stderr)
	}

	if resp.Code != 0 {
		output.Debug("shell command failed", "command", cmd.Line, "code", resp.Code)
		return false
	}
	return true
}

// stream runs cmd with its output attached to the runner's writers.
// exec.RunCommands only returns output once the process has exited.
func (r *ExecRunner) stream(cmd Command) bool {
	ps := osexec.Command("/bin/bash", "-c", cmd.Line)
	ps.Dir = cmd.Dir
	ps.Stdout = r.stdout()
	ps.Stderr = r.stderr()

	err := ps.Run()
	if err == nil {
		return true
	}
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		output.Debug("shell command failed", "command", cmd.Line, "code", exitErr.ExitCode())
		return false
	}
	output.Error("shell command could not be started", "command", cmd.Line, "error", err)
	return false
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr == nil {
		return output.Stderr()
	}
	return r.Stderr
}

// Join quotes args for the shell and joins them with spaces.
func Join(args ...string) string {
	return shellquote.Join(args...)
}

// Chain joins command lines so each runs only if the previous one succeeded.
func Chain(lines ...string) string {
	return strings.Join(lines, " && ")
}

// Split parses a command line into arguments using shell quoting rules.
func Split(line string) ([]string, error) {
	return shellquote.Split(line)
}
