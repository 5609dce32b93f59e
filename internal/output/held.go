package output

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// stderrTarget is the destination of Stderr.
var stderrTarget io.Writer = os.Stderr

// held buffers Stderr writes while a spinner owns the terminal.
var held struct {
	sync.Mutex
	buf *bytes.Buffer
}

type stderrWriter struct{}

func (stderrWriter) Write(p []byte) (int, error) {
	held.Lock()
	defer held.Unlock()
	if held.buf != nil {
		return held.buf.Write(p)
	}
	return stderrTarget.Write(p)
}

// Stderr returns a writer to the process stderr. Writes made while a
// spinner is running are delayed until it stops.
func Stderr() io.Writer {
	return stderrWriter{}
}

func holdStderr() {
	held.Lock()
	defer held.Unlock()
	if held.buf == nil {
		held.buf = &bytes.Buffer{}
	}
}

func releaseStderr() {
	held.Lock()
	defer held.Unlock()
	buf := held.buf
	held.buf = nil
	if buf != nil && buf.Len() > 0 {
		_, _ = stderrTarget.Write(buf.Bytes())
	}
}
