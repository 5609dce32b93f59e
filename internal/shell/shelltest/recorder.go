// Package shelltest provides a recording shell.Runner for tests.
package shelltest

import (
	"strings"

	"github.com/djangodev/cli/internal/shell"
)

// Recorder records every command instead of running it.
type Recorder struct {
	// Commands holds the recorded commands in call order.
	Commands []shell.Command

	// Fail makes Run report failure for lines containing any of these substrings.
	Fail []string

	// OnRun, when set, is called for each command before it is recorded.
	OnRun func(cmd shell.Command)
}

// Run records cmd.
func (r *Recorder) Run(cmd shell.Command) bool {
	if r.OnRun != nil {
		r.OnRun(cmd)
	}
	r.Commands = append(r.Commands, cmd)
	for _, f := range r.Fail {
		if strings.Contains(cmd.Line, f) {
			return false
		}
	}
	return true
}

// Lines returns the recorded command lines.
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		lines[i] = c.Line
	}
	return lines
}

// ManageArgs returns the arguments passed to manage.py by each recorded
// management command, e.g. ["makemigrations", "sitecats"]. Other commands
// are skipped.
func (r *Recorder) ManageArgs() [][]string {
	var out [][]string
	for _, c := range r.Commands {
		args, err := shell.Split(c.Line)
		if err != nil {
			continue
		}
		for i, a := range args {
			if strings.HasSuffix(a, "manage.py") {
				out = append(out, args[i+1:])
				break
			}
		}
	}
	return out
}
