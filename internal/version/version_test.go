package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()

	assert.Contains(t, str, "v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{name: "python3", output: "Python 3.12.1\n", want: "3.12.1"},
		{name: "python2 on stderr", output: "Python 2.7.18", want: "2.7.18"},
		{name: "release candidate", output: "Python 3.13.0rc2", want: "3.13.0rc2"},
		{name: "garbage", output: "command not understood", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractVersion(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectPython_NotFound(t *testing.T) {
	info := DetectPython("definitely-not-a-python-interpreter")

	assert.False(t, info.Found)
	assert.Contains(t, info.String(), "not found")
}

func TestPythonInfoString(t *testing.T) {
	info := PythonInfo{Name: "python3", Version: "3.12.1", Path: "/usr/bin/python3", Found: true}

	str := FullVersionString(Info{Version: "v1.0.0"}, info)

	assert.Contains(t, str, "python3 3.12.1")
	assert.Contains(t, str, "/usr/bin/python3")
	assert.Contains(t, str, "v1.0.0")
}
