package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) (*ExecRunner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("bash runner is not available on windows")
	}
	var stdout, stderr bytes.Buffer
	return &ExecRunner{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestExecRunner_ReportsExitStatus(t *testing.T) {
	r, _, _ := newTestRunner(t)

	assert.True(t, r.Run(Command{Line: "true"}))
	assert.False(t, r.Run(Command{Line: "false"}))
	assert.False(t, r.Run(Command{Line: "exit 3"}))
}

func TestExecRunner_VerboseCopiesStdout(t *testing.T) {
	r, stdout, _ := newTestRunner(t)

	require.True(t, r.Run(Command{Line: "echo quiet"}))
	assert.Empty(t, stdout.String(), "non-verbose output is swallowed")

	require.True(t, r.Run(Command{Line: "echo loud", Verbose: true}))
	assert.Equal(t, "loud\n", stdout.String())
}

// signalWriter creates a file the first time it sees a marker, letting a
// running command observe that its output has already been delivered.
type signalWriter struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	marker string
	path   string
}

func (w *signalWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n, err := w.buf.Write(p)
	if strings.Contains(w.buf.String(), w.marker) {
		_ = os.WriteFile(w.path, nil, 0o644)
	}
	return n, err
}

func TestExecRunner_VerboseStreamsWhileRunning(t *testing.T) {
	r, _, _ := newTestRunner(t)
	dir := t.TempDir()
	out := &signalWriter{marker: "compiling", path: filepath.Join(dir, "seen")}
	r.Stdout = out

	// The command only succeeds if its first line reached the writer
	// before it exited.
	line := `echo compiling; for i in $(seq 1 100); do [ -f seen ] && exit 0; sleep 0.05; done; exit 1`

	assert.True(t, r.Run(Command{Line: line, Dir: dir, Verbose: true}))
	assert.Equal(t, "compiling\n", out.buf.String())
}

func TestExecRunner_VerboseReportsExitStatus(t *testing.T) {
	r, stdout, stderr := newTestRunner(t)

	assert.False(t, r.Run(Command{Line: "echo partial; echo broken >&2; exit 4", Verbose: true}))
	assert.Equal(t, "partial\n", stdout.String())
	assert.Contains(t, stderr.String(), "broken")
}

func TestExecRunner_StderrAlwaysShown(t *testing.T) {
	r, _, stderr := newTestRunner(t)

	r.Run(Command{Line: "echo oops >&2"})

	assert.Contains(t, stderr.String(), "oops")
}

func TestExecRunner_UsesWorkingDir(t *testing.T) {
	r, _, _ := newTestRunner(t)
	dir := t.TempDir()
	before, err := os.Getwd()
	require.NoError(t, err)

	require.True(t, r.Run(Command{Line: "pwd > where.txt", Dir: dir}))

	content, err := os.ReadFile(filepath.Join(dir, "where.txt"))
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(string(content)))
	require.NoError(t, err)
	assert.Equal(t, resolved, got)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after, "process working directory must not change")
}

func TestChainAndJoin(t *testing.T) {
	line := Chain(Join(".", "/w/venvs/1.7/bin/activate"), Join("pip", "install", "-U", "south==1.0.1"))
	assert.Equal(t, ". /w/venvs/1.7/bin/activate && pip install -U south==1.0.1", line)

	assert.Equal(t, "python '/my apps/manage.py'", Join("python", "/my apps/manage.py"))
}

func TestSplit(t *testing.T) {
	args, err := Split(`python '/my apps/manage.py' makemessages -l ru`)
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "/my apps/manage.py", "makemessages", "-l", "ru"}, args)
}
