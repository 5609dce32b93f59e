// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// WorkspaceFs returns an in-memory filesystem holding the given directories,
// relative to root.
func WorkspaceFs(t *testing.T, root string, dirs ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0o755))
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(filepath.Join(root, d), 0o755), "creating %s", d)
	}
	return fs
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "reading %s", path)
	return string(content)
}
